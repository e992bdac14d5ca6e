package cmd

import (
	"github.com/stowbar/stowbar/internal/output"
	"github.com/stowbar/stowbar/internal/platform"
	"github.com/stowbar/stowbar/internal/version"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show capability and separator state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// StatusResult is the top-level output of the `status` command.
type StatusResult struct {
	Version      string `yaml:"version"       json:"version"`
	InputTrusted bool   `yaml:"input_trusted" json:"input_trusted"`
	Separator    string `yaml:"separator"     json:"separator"`
	Visible      int    `yaml:"visible"       json:"visible"`
	Hidden       int    `yaml:"hidden"        json:"hidden"`
	Total        int    `yaml:"total"         json:"total"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	eng.Scan()
	snap := eng.Current()

	return output.Print(StatusResult{
		Version:      version.Version,
		InputTrusted: platform.InputTrusted(),
		Separator:    eng.SeparatorState().String(),
		Visible:      len(snap.Visible),
		Hidden:       len(snap.Hidden),
		Total:        snap.Total(),
	})
}
