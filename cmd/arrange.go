package cmd

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/output"
	"github.com/spf13/cobra"
)

var arrangeCmd = &cobra.Command{
	Use:   "arrange",
	Short: "Apply a saved arrangement",
	Long: `Read an arrangement file (owners grouped under visible: and hidden:) and
toggle every item that sits on the wrong side of the separator. Items the
arrangement does not mention are left alone.

Example arrangement:
  visible:
    - com.example.clock
  hidden:
    - Dropbox
    - com.example.vpn`,
	RunE: runArrange,
}

func init() {
	rootCmd.AddCommand(arrangeCmd)
	arrangeCmd.Flags().StringP("file", "f", "", "Arrangement file (required)")
	arrangeCmd.Flags().Bool("stop-on-error", true, "Stop on the first failed toggle")
	arrangeCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	arrangeCmd.MarkFlagRequired("file")
}

// ArrangeResult is the output of the `arrange` command.
type ArrangeResult struct {
	OK        bool           `yaml:"ok"              json:"ok"`
	Steps     int            `yaml:"steps"           json:"steps"`
	Completed int            `yaml:"completed"       json:"completed"`
	Error     string         `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []ArrangeStep  `yaml:"results"         json:"results"`
}

// ArrangeStep is the outcome for one toggled item.
type ArrangeStep struct {
	App      string `yaml:"app"             json:"app"`
	WindowID uint32 `yaml:"window_id"       json:"window_id"`
	Wanted   string `yaml:"wanted"          json:"wanted"`
	OK       bool   `yaml:"ok"              json:"ok"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

func runArrange(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	arrangement, err := model.LoadArrangement(path)
	if err != nil {
		return err
	}

	eng.Scan()
	snap := eng.Current()

	// Collect the items sitting on the wrong side.
	type pending struct {
		item        model.Item
		wantVisible bool
	}
	var work []pending
	for _, it := range snap.Visible {
		if wantVisible, mentioned := arrangement.WantsVisible(it); mentioned && !wantVisible {
			work = append(work, pending{item: it, wantVisible: false})
		}
	}
	for _, it := range snap.Hidden {
		if wantVisible, mentioned := arrangement.WantsVisible(it); mentioned && wantVisible {
			work = append(work, pending{item: it, wantVisible: true})
		}
	}

	result := ArrangeResult{OK: true, Steps: len(work), Results: []ArrangeStep{}}
	for _, p := range work {
		step := ArrangeStep{
			App:      p.item.DisplayName(),
			WindowID: uint32(p.item.WindowID),
			Wanted:   sideName(p.wantVisible),
		}
		if err := eng.ToggleVisibility(p.item); err != nil {
			step.Error = err.Error()
			result.OK = false
			result.Error = fmt.Sprintf("toggle %s: %v", p.item.DisplayName(), err)
			result.Results = append(result.Results, step)
			if stopOnError {
				break
			}
			continue
		}
		step.OK = true
		result.Completed++
		result.Results = append(result.Results, step)
	}

	return output.Print(result)
}

func sideName(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
