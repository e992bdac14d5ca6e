package cmd

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a menu bar item to a horizontal position",
	Long: `Drag a menu bar item to the given x coordinate using the system's
command-drag reorder gesture. Requires the accessibility permission; system
items (clock, Control Center, input switcher) cannot be moved.`,
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int("window-id", 0, "Target item by window id")
	moveCmd.Flags().String("owner", "", "Target item by bundle id or app name")
	moveCmd.Flags().Float64("to-x", 0, "Destination x coordinate (required)")
	moveCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	moveCmd.MarkFlagRequired("to-x")
}

// ActionResult is the output of the item-action commands (move, toggle,
// click, reveal).
type ActionResult struct {
	OK       bool    `yaml:"ok"                json:"ok"`
	Action   string  `yaml:"action"            json:"action"`
	App      string  `yaml:"app,omitempty"     json:"app,omitempty"`
	WindowID uint32  `yaml:"window_id"         json:"window_id"`
	X        float64 `yaml:"x,omitempty"       json:"x,omitempty"`
	Error    string  `yaml:"error,omitempty"   json:"error,omitempty"`
}

func runMove(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	windowID, _ := cmd.Flags().GetInt("window-id")
	owner, _ := cmd.Flags().GetString("owner")
	toX, _ := cmd.Flags().GetFloat64("to-x")

	item, err := resolveItem(eng, windowID, owner)
	if err != nil {
		return err
	}
	if err := eng.Move(item, toX); err != nil {
		return fmt.Errorf("move %s: %w", item.DisplayName(), err)
	}

	return output.Print(ActionResult{
		OK:       true,
		Action:   "move",
		App:      item.DisplayName(),
		WindowID: uint32(item.WindowID),
		X:        toX,
	})
}
