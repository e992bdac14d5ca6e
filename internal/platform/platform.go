package platform

import "github.com/stowbar/stowbar/internal/model"

// WindowGateway queries the window server for menu bar windows. Any query
// may legitimately return an empty result when the host denies it or the
// connection is momentarily unavailable; callers treat empty as "no data
// this cycle", not as an error.
type WindowGateway interface {
	// MenuBarWindows returns the window ids the window server's status-item
	// registry attributes to any process. This is the narrow, authoritative
	// enumeration: tooltips, notification bubbles, and background-agent
	// windows never appear in it.
	MenuBarWindows() ([]model.WindowID, error)

	// OnScreenWindows returns the ids of windows currently rendered on any
	// display.
	OnScreenWindows() ([]model.WindowID, error)

	// WindowFrame returns the screen rectangle for a window, or ok=false
	// when the window server cannot supply one.
	WindowFrame(id model.WindowID) (model.Rect, bool)

	// WindowLevel returns the window server level for a window.
	WindowLevel(id model.WindowID) (int, bool)

	// WindowMetadata returns per-window owner pid, owner name, title,
	// bounds, and on-screen flag via the public enumeration. The registry
	// behind MenuBarWindows does not expose ownership, so this second,
	// best-effort query fills it in. Windows absent from the result simply
	// have no metadata this cycle.
	WindowMetadata(ids []model.WindowID) (map[model.WindowID]WindowMeta, error)
}

// StatusItemHost owns the engine's two status items: the invisible
// resizable separator and the chevron trigger.
type StatusItemHost interface {
	// Create registers both items with the host. The separator starts at
	// the given width; the chevron invokes onChevron when clicked.
	Create(separatorWidth float64, onChevron func()) error

	// SeparatorWindowID returns the separator's window id, or ok=false
	// before Create or after the host has dropped the item.
	SeparatorWindowID() (model.WindowID, bool)

	// SeparatorFrame returns the separator's current screen frame.
	SeparatorFrame() (model.Rect, bool)

	// SetSeparatorWidth resizes the separator. The host applies the change
	// asynchronously in its next layout pass; callers performing timed
	// sequences must wait before treating a rescan as valid.
	SetSeparatorWidth(width float64) error

	// ChevronWindowID returns the chevron's window id.
	ChevronWindowID() (model.WindowID, bool)

	// Close removes both items from the host.
	Close()
}

// InputPoster synthesizes pointer events at screen coordinates. Posting
// succeeds without effect when the process lacks the input trust grant;
// Trusted distinguishes the two.
type InputPoster interface {
	MouseDown(x, y float64, commandHeld bool) error
	MouseDrag(x, y float64, commandHeld bool) error
	MouseUp(x, y float64, commandHeld bool) error

	// Trusted reports whether the host granted this process input
	// synthesis (accessibility trust).
	Trusted() bool
}

// ProcessResolver maps owner pids to live process identity.
type ProcessResolver interface {
	// Lookup returns the running application for a pid, or ok=false when
	// no such process is running.
	Lookup(pid int) (ProcessInfo, bool)

	// Activate brings the process's application to the foreground.
	Activate(pid int) error

	// IconPNG returns the process's application icon as PNG bytes,
	// best-effort.
	IconPNG(pid int) ([]byte, error)
}

// DisplayMetrics reports menu bar geometry. Queried fresh each scan so
// monitor and resolution changes are picked up without restart.
type DisplayMetrics interface {
	MenuBarHeight() float64
	MainScreenBounds() model.Rect
}
