package engine

import "github.com/stowbar/stowbar/internal/model"

// shellBundleID is the window server shell. When every scanned window
// reports one owner pid resolving to this identifier, the host has
// misattributed ownership and per-owner data is untrusted for the cycle.
const shellBundleID = "com.apple.WindowServer"

// systemOwned lists first-party items the system bar refuses to move or
// hide. The command-drag gesture is a no-op on them, so move and hide are
// rejected up front instead of silently failing.
var systemOwned = map[string]bool{
	"com.apple.controlcenter":      true,
	"com.apple.systemuiserver":     true,
	"com.apple.Siri":               true,
	"com.apple.TextInputMenuAgent": true,
}

// systemItem reports whether the item belongs to the fixed deny-list of
// first-party system processes, by resolved bundle identifier.
func systemItem(it model.Item) bool {
	return systemOwned[it.BundleID]
}
