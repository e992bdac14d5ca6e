package model

import "sort"

// DedupByOwner keeps one item per owner pid, preferring the widest frame.
// Distinct windows registered by the same process are almost always one
// logical status item plus its auxiliary windows; the widest frame is the
// item itself. Output is sorted by ascending left edge.
func DedupByOwner(items []Item) []Item {
	widest := make(map[int]Item, len(items))
	for _, it := range items {
		best, ok := widest[it.OwnerPID]
		if !ok || it.Frame.W > best.Frame.W {
			widest[it.OwnerPID] = it
		}
	}
	kept := make([]Item, 0, len(widest))
	for _, it := range widest {
		kept = append(kept, it)
	}
	SortByPosition(kept)
	return kept
}

// SortByPosition orders items by ascending left edge, window id as the
// tiebreak so the order is deterministic.
func SortByPosition(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Frame.MinX() != items[j].Frame.MinX() {
			return items[i].Frame.MinX() < items[j].Frame.MinX()
		}
		return items[i].WindowID < items[j].WindowID
	})
}

// CommonOwner reports whether every item shares a single owner pid, and
// returns that pid. Many distinct items collapsing onto one pid is the
// signature of the host misattributing ownership (see Misattributed);
// when it happens, per-owner deduplication would destroy real items.
func CommonOwner(items []Item) (int, bool) {
	if len(items) < 2 {
		return 0, false
	}
	pid := items[0].OwnerPID
	for _, it := range items[1:] {
		if it.OwnerPID != pid {
			return 0, false
		}
	}
	return pid, true
}
