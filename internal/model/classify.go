package model

// Partition splits items into the on-screen (visible) and pushed-off
// (hidden) sets relative to the separator's frame. An item is visible when
// its left edge sits at or to the right of the separator's right edge.
//
// When the separator's frame is unavailable this cycle (separatorOK false),
// classification falls back to the window server's own on-screen flag plus
// a non-negative left edge. The fallback trades precision for availability:
// it cannot distinguish an item sitting just left of the separator from one
// pushed off the display edge.
//
// Both returned slices are sorted by ascending left edge and together
// contain every input item exactly once.
func Partition(items []Item, separator Rect, separatorOK bool) (visible, hidden []Item) {
	for _, it := range items {
		if isVisible(it, separator, separatorOK) {
			visible = append(visible, it)
		} else {
			hidden = append(hidden, it)
		}
	}
	SortByPosition(visible)
	SortByPosition(hidden)
	return visible, hidden
}

func isVisible(it Item, separator Rect, separatorOK bool) bool {
	if separatorOK {
		return it.Frame.MinX() >= separator.MaxX()
	}
	return it.OnScreen && it.Frame.MinX() >= 0
}
