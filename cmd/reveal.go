package cmd

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Temporarily show a hidden item and click it",
	Long: `Collapse the separator so hidden items slide back on-screen, click the
target at its fresh position, wait for the user to interact with whatever
opened, then expand the separator again. The separator always ends expanded,
even when a step fails.`,
	RunE: runReveal,
}

func init() {
	rootCmd.AddCommand(revealCmd)
	revealCmd.Flags().Int("window-id", 0, "Target item by window id")
	revealCmd.Flags().String("owner", "", "Target item by bundle id or app name")
	revealCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runReveal(cmd *cobra.Command, args []string) error {
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
	if err := eng.Reveal(item); err != nil {
		return fmt.Errorf("reveal %s: %w", item.DisplayName(), err)
	}

	return output.Print(ActionResult{
		OK:       true,
		Action:   "reveal",
		App:      item.DisplayName(),
		WindowID: uint32(item.WindowID),
	})
}
