package engine

import (
	"errors"
	"fmt"

	"github.com/stowbar/stowbar/internal/model"
)

// Sentinel errors for input simulation. Neither is retried automatically;
// a later user action may retry.
var (
	// ErrNotMovable marks an item on the system deny-list. The host bar
	// ignores the reorder gesture for these, so the move is rejected
	// before any event is synthesized.
	ErrNotMovable = errors.New("item cannot be moved")

	// ErrEventCreation marks the host refusing to synthesize input,
	// typically because the accessibility trust grant is missing.
	ErrEventCreation = errors.New("event creation failed")
)

// Move drags the item's center to toX along the menu bar using the host's
// command-drag reorder gesture. The gesture is a contract with the system
// shell: command-drag is the only recognized way to reorder status items.
// A failed step can leave the bar mid-transition; the rescan at the end,
// and any later scan, corrects the snapshot.
func (e *Engine) Move(it model.Item, toX float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moveLocked(it, toX)
}

func (e *Engine) moveLocked(it model.Item, toX float64) error {
	if e.denied(it) {
		return fmt.Errorf("%s: %w", it.DisplayName(), ErrNotMovable)
	}

	x, y := it.Frame.MidX(), it.Frame.MidY()
	e.log.Debug("moving item", "item", it.DisplayName(), "from_x", x, "to_x", toX)

	if err := e.input.MouseDown(x, y, true); err != nil {
		return fmt.Errorf("%w: %v", ErrEventCreation, err)
	}
	e.clock.Sleep(eventPause)
	if err := e.input.MouseDrag(toX, y, true); err != nil {
		return fmt.Errorf("%w: %v", ErrEventCreation, err)
	}
	e.clock.Sleep(eventPause)
	if err := e.input.MouseUp(toX, y, true); err != nil {
		return fmt.Errorf("%w: %v", ErrEventCreation, err)
	}

	e.clock.Sleep(settleDelay)
	e.scanLocked()
	return nil
}

// Click delivers a synthetic click to the item's center. When the item's
// frame is unknown, the owning application is activated instead of
// failing. No automatic rescan: callers decide whether the click changed
// the bar.
func (e *Engine) Click(it model.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clickLocked(it)
}

func (e *Engine) clickLocked(it model.Item) error {
	if it.Frame.IsDegenerate() {
		e.log.Debug("click target has no frame, activating owner", "item", it.DisplayName(), "pid", it.OwnerPID)
		return e.procs.Activate(it.OwnerPID)
	}

	x, y := it.Frame.MidX(), it.Frame.MidY()
	if err := e.input.MouseDown(x, y, false); err != nil {
		return fmt.Errorf("%w: %v", ErrEventCreation, err)
	}
	e.clock.Sleep(eventPause)
	if err := e.input.MouseUp(x, y, false); err != nil {
		return fmt.Errorf("%w: %v", ErrEventCreation, err)
	}
	return nil
}

// ToggleVisibility drags the item across the separator: a hidden item just
// past the separator's right edge, a visible one just past its left edge.
func (e *Engine) ToggleVisibility(it model.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.Hideable(it) {
		return fmt.Errorf("%s: %w", it.DisplayName(), ErrNotMovable)
	}
	sepFrame, ok := e.sep.Frame()
	if !ok {
		return fmt.Errorf("separator frame unavailable, cannot pick a target position")
	}

	var toX float64
	if it.Frame.MinX() >= sepFrame.MaxX() {
		toX = sepFrame.MinX() - toggleMargin
	} else {
		toX = sepFrame.MaxX() + toggleMargin
	}
	return e.moveLocked(it, toX)
}
