package cmd

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click a menu bar item",
	Long: `Deliver a synthetic click to an item's current position. For an item with
no known position, the owning application is activated instead. To click an
item that is pushed off-screen, use reveal.`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Int("window-id", 0, "Target item by window id")
	clickCmd.Flags().String("owner", "", "Target item by bundle id or app name")
	clickCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runClick(cmd *cobra.Command, args []string) error {
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
	if err := eng.Click(item); err != nil {
		return fmt.Errorf("click %s: %w", item.DisplayName(), err)
	}

	return output.Print(ActionResult{
		OK:       true,
		Action:   "click",
		App:      item.DisplayName(),
		WindowID: uint32(item.WindowID),
		X:        item.Frame.MidX(),
	})
}
