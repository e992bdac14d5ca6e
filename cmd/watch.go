package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/stowbar/stowbar/internal/engine"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the menu bar and stream changes as JSONL",
	Long: `Continuously scan the menu bar and emit changes (items appearing,
disappearing, crossing the separator, or moving) as JSONL to stdout. No
output is emitted while the bar is stable.

Output is always JSONL regardless of the --format flag.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default: scan_interval_ms)")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")

	interval := cfg.ScanInterval()
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	var deadline time.Time
	if durationSec > 0 {
		deadline = time.Now().Add(time.Duration(durationSec) * time.Second)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	// Baseline scan.
	eng.Scan()
	prev := eng.Current()
	enc.Encode(map[string]interface{}{
		"type":    "snapshot",
		"ts":      prev.At.Unix(),
		"visible": len(prev.Visible),
		"hidden":  len(prev.Hidden),
	})

	for {
		if durationSec > 0 && time.Now().After(deadline) {
			return nil
		}
		time.Sleep(interval)

		eng.Scan()
		curr := eng.Current()
		for _, change := range diffSnapshots(prev, curr) {
			enc.Encode(change)
		}
		prev = curr
	}
}

func diffSnapshots(prev, curr engine.Snapshot) []interface{} {
	changes := curr.DiffFrom(prev)
	out := make([]interface{}, len(changes))
	for i := range changes {
		out[i] = changes[i]
	}
	return out
}
