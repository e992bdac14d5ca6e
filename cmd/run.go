package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/stowbar/stowbar/internal/engine"
	"github.com/stowbar/stowbar/internal/logging"
	"github.com/stowbar/stowbar/internal/platform"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the overflow daemon",
	Long: `Register the separator and chevron status items and scan the menu bar
periodically until interrupted. The chevron toggles the separator between its
expanded (items hidden) and collapsed (items shown) widths.

Detection works without the accessibility permission; moving and clicking
items needs it (System Settings > Privacy & Security > Accessibility).`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logging.Component(logging.CompCLI)

	eng, err := newEngine()
	if err != nil {
		return err
	}

	// Chevron clicks arrive on the host UI thread; hop off it before
	// taking the engine lock.
	onChevron := func() {
		go func() {
			state := engine.Collapsed
			if eng.SeparatorState() == engine.Collapsed {
				state = engine.Expanded
			}
			if err := eng.SetSeparatorState(state); err != nil {
				log.Error("chevron toggle failed", "error", err)
			}
		}()
	}

	if err := eng.CreateItems(onChevron); err != nil {
		return err
	}
	defer eng.Close()

	if !platform.InputTrusted() {
		log.Warn("accessibility permission missing; items can be listed but not moved or clicked")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng.Run(ctx, cfg.ScanInterval())
	return nil
}
