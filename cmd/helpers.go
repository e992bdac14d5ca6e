package cmd

import (
	"fmt"
	"strings"

	"github.com/stowbar/stowbar/internal/engine"
	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

// newEngine builds an engine over the current platform. The separator's
// status items are only registered by the long-running commands (run,
// serve); one-shot commands classify via the on-screen fallback.
func newEngine() (*engine.Engine, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Options{
		Provider:   provider,
		DenyOwners: cfg.DenyOwners,
	}), nil
}

// resolveItem scans and finds a single item by window id or by owner
// (bundle id or app name, case-insensitive). The error for multiple
// matches lists candidates so the caller can refine.
func resolveItem(eng *engine.Engine, windowID int, owner string) (model.Item, error) {
	if windowID == 0 && owner == "" {
		return model.Item{}, fmt.Errorf("specify --window-id or --owner")
	}

	eng.Scan()
	snap := eng.Current()
	all := append(append([]model.Item{}, snap.Visible...), snap.Hidden...)

	if windowID != 0 {
		if it, ok := snap.Find(model.WindowID(windowID)); ok {
			return it, nil
		}
		return model.Item{}, fmt.Errorf("no menu bar item with window id %d", windowID)
	}

	var matches []model.Item
	for _, it := range all {
		if strings.EqualFold(owner, it.BundleID) || strings.EqualFold(owner, it.DisplayName()) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return model.Item{}, fmt.Errorf("no menu bar item matches owner %q", owner)
	case 1:
		return matches[0], nil
	default:
		var names []string
		for _, it := range matches {
			names = append(names, fmt.Sprintf("%s (window %d)", it.DisplayName(), it.WindowID))
		}
		return model.Item{}, fmt.Errorf("owner %q matches %d items: %s; use --window-id",
			owner, len(matches), strings.Join(names, ", "))
	}
}

// Param helpers for MCP tool arguments, which arrive as a generic map.

func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func FloatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
