package cmd

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Move an item across the separator",
	Long: `Drag an item to the other side of the separator: a hidden item becomes
visible, a visible one is pushed into the hidden set. Requires the daemon's
separator item to be present in the bar.`,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().Int("window-id", 0, "Target item by window id")
	toggleCmd.Flags().String("owner", "", "Target item by bundle id or app name")
	toggleCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runToggle(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	windowID, _ := cmd.Flags().GetInt("window-id")
	owner, _ := cmd.Flags().GetString("owner")

	item, err := resolveItem(eng, windowID, owner)
	if err != nil {
		return err
	}
	if err := eng.ToggleVisibility(item); err != nil {
		return fmt.Errorf("toggle %s: %w", item.DisplayName(), err)
	}

	return output.Print(ActionResult{
		OK:       true,
		Action:   "toggle",
		App:      item.DisplayName(),
		WindowID: uint32(item.WindowID),
	})
}
