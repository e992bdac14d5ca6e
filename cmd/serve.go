package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the menu bar tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the menu bar
operations as tools. AI agents can list, move, toggle, click, and reveal
items directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  stowbar serve
  stowbar serve --transport streamable-http --port 8080
  stowbar serve --scan-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("scan-ttl", 500, "Scan throttle TTL in milliseconds (0 to disable)")
	serveCmd.Flags().Bool("status-items", true, "Register the separator and chevron status items")
}

func runServe(cmd *cobra.Command, args []string) error {
	mcfg := serveConfig(cmd)

	srv, err := newMCPServer(mcfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.close()

	return srv.serve(mcfg)
}

// serveConfig builds the server configuration from the command's flags and
// the loaded settings, which supply the deny-list and the icon refresh
// interval.
func serveConfig(cmd *cobra.Command) MCPConfig {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	scanTTLMs, _ := cmd.Flags().GetInt("scan-ttl")
	statusItems, _ := cmd.Flags().GetBool("status-items")

	return MCPConfig{
		Transport:   transport,
		Port:        port,
		ScanTTL:     time.Duration(scanTTLMs) * time.Millisecond,
		StatusItems: statusItems,
		DenyOwners:  cfg.DenyOwners,
		IconRefresh: cfg.IconRefresh(),
	}
}
