package platform

import "github.com/stowbar/stowbar/internal/model"

// WindowMeta is the per-window result of the public metadata enumeration.
// Every field is best-effort: the owner pid may be zero, and on some hosts
// the owner attribution is outright wrong (see the scanner's
// misattribution handling).
type WindowMeta struct {
	OwnerPID  int
	OwnerName string
	Title     string
	Bounds    model.Rect
	OnScreen  bool
}

// ProcessInfo is a running application resolved from an owner pid.
type ProcessInfo struct {
	PID      int
	Name     string
	BundleID string
}
