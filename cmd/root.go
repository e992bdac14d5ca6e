package cmd

import (
	"fmt"
	"os"

	"github.com/stowbar/stowbar/internal/config"
	"github.com/stowbar/stowbar/internal/logging"
	"github.com/stowbar/stowbar/internal/output"
	"github.com/stowbar/stowbar/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stowbar",
	Short: "Manage menu bar overflow",
	Long: "A macOS menu bar overflow manager: partitions status items into a visible and a\n" +
		"hidden set with an invisible separator item, and can move, reveal, or click items\n" +
		"that are currently pushed off-screen.",
}

// cfg is the per-run settings snapshot, loaded once in the pre-run hook.
var cfg config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Settings file (default ~/.stowbar/settings.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		var err error
		if cfg, err = config.LoadOrDefault(path); err != nil {
			return err
		}
		logging.Init(cfg.Log)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		// Piped output defaults to JSON for machine consumers; a terminal
		// gets YAML.
		if format == "" {
			if output.IsOutputPiped() {
				format = "json"
			} else {
				format = "yaml"
			}
		}
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
