package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stowbar/stowbar/internal/engine"
	"github.com/stowbar/stowbar/internal/icons"
	"github.com/stowbar/stowbar/internal/logging"
	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
	"github.com/stowbar/stowbar/internal/server"
	"github.com/stowbar/stowbar/internal/version"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the engine, the icon cache, and the
// scan throttle.
type mcpServer struct {
	eng      *engine.Engine
	icons    *icons.Cache
	throttle *server.ScanThrottle
	engineMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration. DenyOwners and IconRefresh
// carry the relevant slice of the loaded settings so the server never
// reads mutable package state.
type MCPConfig struct {
	Transport   string
	Port        int
	ScanTTL     time.Duration
	StatusItems bool
	DenyOwners  []string
	IconRefresh time.Duration
}

// newMCPServer creates and configures an MCP server with all stowbar tools.
func newMCPServer(mcfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	eng := engine.New(engine.Options{
		Provider:   provider,
		DenyOwners: mcfg.DenyOwners,
	})

	s := &mcpServer{
		eng:      eng,
		icons:    icons.New(provider.Processes, icons.DefaultSize, mcfg.IconRefresh),
		throttle: server.NewScanThrottle(mcfg.ScanTTL),
	}

	// Without the status items the separator has no frame and
	// classification falls back to on-screen position only.
	if mcfg.StatusItems {
		onChevron := func() {
			go func() {
				state := engine.Collapsed
				if eng.SeparatorState() == engine.Collapsed {
					state = engine.Expanded
				}
				if err := eng.SetSeparatorState(state); err != nil {
					logging.Component(logging.CompMCP).Error("chevron toggle failed", "error", err)
				}
				s.throttle.Invalidate()
			}()
		}
		if err := eng.CreateItems(onChevron); err != nil {
			logging.Component(logging.CompMCP).Warn("status items unavailable, classifying by position only", "error", err)
		}
	}

	s.mcp = mcpserver.NewMCPServer(
		"stowbar",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(mcfg MCPConfig) error {
	switch mcfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", mcfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", mcfg.Transport)
	}
}

func (s *mcpServer) close() {
	s.eng.Close()
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List menu bar items partitioned into visible and hidden"),
			mcp.WithBoolean("hidden", mcp.Description("Only return hidden items")),
			mcp.WithBoolean("visible", mcp.Description("Only return visible items")),
			mcp.WithBoolean("icons", mcp.Description("Include base64 PNG app icons")),
		),
		s.handleList,
	)

	// scan
	s.mcp.AddTool(
		mcp.NewTool("scan",
			mcp.WithDescription("Force a fresh menu bar scan, bypassing the scan throttle"),
		),
		s.handleScan,
	)

	// move
	s.mcp.AddTool(
		mcp.NewTool("move",
			mcp.WithDescription("Drag a menu bar item to an x coordinate with the command-drag gesture"),
			mcp.WithNumber("window-id", mcp.Description("Target item by window id")),
			mcp.WithString("owner", mcp.Description("Target item by bundle id or app name")),
			mcp.WithNumber("to-x", mcp.Description("Destination x coordinate"), mcp.Required()),
		),
		s.handleMove,
	)

	// toggle
	s.mcp.AddTool(
		mcp.NewTool("toggle",
			mcp.WithDescription("Move a menu bar item across the separator (visible <-> hidden)"),
			mcp.WithNumber("window-id", mcp.Description("Target item by window id")),
			mcp.WithString("owner", mcp.Description("Target item by bundle id or app name")),
		),
		s.handleToggle,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click a menu bar item at its current position"),
			mcp.WithNumber("window-id", mcp.Description("Target item by window id")),
			mcp.WithString("owner", mcp.Description("Target item by bundle id or app name")),
		),
		s.handleClick,
	)

	// reveal
	s.mcp.AddTool(
		mcp.NewTool("reveal",
			mcp.WithDescription("Temporarily show a hidden item, click it, then hide the overflow again"),
			mcp.WithNumber("window-id", mcp.Description("Target item by window id")),
			mcp.WithString("owner", mcp.Description("Target item by bundle id or app name")),
		),
		s.handleReveal,
	)

	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report version, input permission, separator state, and item counts"),
		),
		s.handleStatus,
	)
}

// mcpItem is an Item plus an optional inline icon for MCP list output.
type mcpItem struct {
	model.Item `yaml:",inline"`
	Icon       string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

func (s *mcpServer) decorate(items []model.Item, withIcons bool) []mcpItem {
	out := make([]mcpItem, 0, len(items))
	for _, it := range items {
		mi := mcpItem{Item: it}
		if withIcons {
			if png, err := s.icons.Icon(it.OwnerPID); err == nil {
				mi.Icon = base64.StdEncoding.EncodeToString(png)
			}
		}
		out = append(out, mi)
	}
	return out
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	hiddenOnly := BoolParam(params, "hidden", false)
	visibleOnly := BoolParam(params, "visible", false)
	withIcons := BoolParam(params, "icons", false)

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	snap := s.throttle.Snapshot(s.eng)

	type listPayload struct {
		TS            int64     `yaml:"ts"`
		Misattributed bool      `yaml:"misattributed,omitempty"`
		Visible       []mcpItem `yaml:"visible,omitempty"`
		Hidden        []mcpItem `yaml:"hidden,omitempty"`
	}
	payload := listPayload{
		TS:            snap.At.Unix(),
		Misattributed: snap.Misattributed,
	}
	if !hiddenOnly {
		payload.Visible = s.decorate(snap.Visible, withIcons)
	}
	if !visibleOnly {
		payload.Hidden = s.decorate(snap.Hidden, withIcons)
	}

	b, err := yaml.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleScan(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	s.throttle.Invalidate()
	snap := s.throttle.Snapshot(s.eng)
	return mcp.NewToolResultText(fmt.Sprintf("scanned: %d visible, %d hidden", len(snap.Visible), len(snap.Hidden))), nil
}

func (s *mcpServer) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	snap := s.throttle.Snapshot(s.eng)
	b, err := yaml.Marshal(StatusResult{
		Version:      version.Version,
		InputTrusted: platform.InputTrusted(),
		Separator:    s.eng.SeparatorState().String(),
		Visible:      len(snap.Visible),
		Hidden:       len(snap.Hidden),
		Total:        snap.Total(),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// resultToText serializes an ActionResult to YAML for MCP output.
func resultToText(result ActionResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

// itemActionHandler resolves a target from the request's window-id/owner
// params, runs the action, and invalidates the scan throttle.
func (s *mcpServer) itemActionHandler(
	request mcp.CallToolRequest,
	action string,
	fn func(model.Item) error,
) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	windowID := IntParam(params, "window-id", 0)
	owner := StringParam(params, "owner", "")

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	result := ActionResult{Action: action}
	item, err := resolveItem(s.eng, windowID, owner)
	if err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.App = item.DisplayName()
	result.WindowID = uint32(item.WindowID)

	s.throttle.Invalidate()
	if err := fn(item); err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toX := FloatParam(request.GetArguments(), "to-x", 0)
	return s.itemActionHandler(request, "move", func(it model.Item) error {
		return s.eng.Move(it, toX)
	})
}

func (s *mcpServer) handleToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.itemActionHandler(request, "toggle", s.eng.ToggleVisibility)
}

func (s *mcpServer) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.itemActionHandler(request, "click", s.eng.Click)
}

func (s *mcpServer) handleReveal(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.itemActionHandler(request, "reveal", s.eng.Reveal)
}
