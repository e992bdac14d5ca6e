package cmd

import (
	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu bar items and their visibility",
	Long: "Scan the menu bar once and print the visible/hidden partition with each\n" +
		"item's app name, bundle id, PID, window id, and frame.",
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("hidden", false, "Only print hidden items")
	listCmd.Flags().Bool("visible", false, "Only print visible items")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	TS            int64        `yaml:"ts"                      json:"ts"`
	Misattributed bool         `yaml:"misattributed,omitempty" json:"misattributed,omitempty"`
	Visible       []model.Item `yaml:"visible,omitempty"       json:"visible,omitempty"`
	Hidden        []model.Item `yaml:"hidden,omitempty"        json:"hidden,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	hiddenOnly, _ := cmd.Flags().GetBool("hidden")
	visibleOnly, _ := cmd.Flags().GetBool("visible")

	eng.Scan()
	snap := eng.Current()

	result := ListResult{
		TS:            snap.At.Unix(),
		Misattributed: snap.Misattributed,
	}
	if !hiddenOnly {
		result.Visible = snap.Visible
	}
	if !visibleOnly {
		result.Hidden = snap.Hidden
	}
	return output.Print(result)
}
