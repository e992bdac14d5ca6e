package model

// Menu bar windows are thin strips pinned to the top edge of a display. The
// tolerances below reject tooltips, notification bubbles, and windows with
// misreported geometry while accepting every real status item.
const (
	// BarTolerance is the allowed deviation, in points, between a window's
	// height (or top edge) and the menu bar's.
	BarTolerance = 5.0

	// MaxItemWidth is the widest plausible single status item. Windows at or
	// beyond this width are decorative overlays, not items.
	MaxItemWidth = 500.0
)

// InMenuBar reports whether frame plausibly belongs to a status item in a
// menu bar of the given height whose top edge sits at barTop.
func InMenuBar(frame Rect, barTop, barHeight float64) bool {
	if frame.W <= 0 || frame.W >= MaxItemWidth {
		return false
	}
	if frame.H < barHeight-BarTolerance || frame.H > barHeight+BarTolerance {
		return false
	}
	if frame.Y < barTop-BarTolerance || frame.Y > barTop+BarTolerance {
		return false
	}
	return true
}

// FilterMenuBarItems returns the items whose frames pass InMenuBar, in the
// original order.
func FilterMenuBarItems(items []Item, barTop, barHeight float64) []Item {
	var kept []Item
	for _, it := range items {
		if InMenuBar(it.Frame, barTop, barHeight) {
			kept = append(kept, it)
		}
	}
	return kept
}
