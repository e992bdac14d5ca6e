package engine

import (
	"fmt"

	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

// SentinelWidth is the separator's expanded width. Wide enough to push
// every item left of it off any plausible display.
const SentinelWidth = 10000.0

// SeparatorState is the separator's logical width state.
type SeparatorState int

const (
	// Collapsed: zero width, items left of the separator slide back on-screen.
	Collapsed SeparatorState = iota
	// Expanded: sentinel width, items left of the separator are pushed off-screen.
	Expanded
)

func (s SeparatorState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Separator wraps the host status item used to partition the menu bar. The
// window identity is stable for the process's lifetime; only the width
// toggles. All methods are called with the engine's lock held.
type Separator struct {
	host  platform.StatusItemHost
	state SeparatorState
}

// newSeparator wraps the host. The item itself is registered by Create.
func newSeparator(host platform.StatusItemHost) *Separator {
	return &Separator{host: host, state: Expanded}
}

// Create registers the separator and chevron with the host. The separator
// starts expanded so everything already in the bar is pushed off-screen on
// first run.
func (s *Separator) Create(onChevron func()) error {
	if s.host == nil {
		return fmt.Errorf("no status item host on this platform")
	}
	if err := s.host.Create(SentinelWidth, onChevron); err != nil {
		return fmt.Errorf("create status items: %w", err)
	}
	s.state = Expanded
	return nil
}

// SetState toggles the separator's registered width. The host applies the
// width asynchronously; callers in timed sequences wait for the layout
// pass before rescanning.
func (s *Separator) SetState(state SeparatorState) error {
	if s.host == nil {
		return fmt.Errorf("no status item host on this platform")
	}
	width := 0.0
	if state == Expanded {
		width = SentinelWidth
	}
	if err := s.host.SetSeparatorWidth(width); err != nil {
		return fmt.Errorf("set separator width: %w", err)
	}
	s.state = state
	return nil
}

// State returns the separator's logical state.
func (s *Separator) State() SeparatorState { return s.state }

// Frame returns the separator's current screen frame, or ok=false when the
// item is not registered or the host cannot report it this cycle.
func (s *Separator) Frame() (model.Rect, bool) {
	if s.host == nil {
		return model.Rect{}, false
	}
	return s.host.SeparatorFrame()
}

// WindowID returns the separator's window id.
func (s *Separator) WindowID() (model.WindowID, bool) {
	if s.host == nil {
		return 0, false
	}
	return s.host.SeparatorWindowID()
}

// ChevronWindowID returns the chevron trigger item's window id.
func (s *Separator) ChevronWindowID() (model.WindowID, bool) {
	if s.host == nil {
		return 0, false
	}
	return s.host.ChevronWindowID()
}

// Close removes both status items from the host.
func (s *Separator) Close() {
	if s.host != nil {
		s.host.Close()
	}
}
