package model

import "time"

// ChangeType is the kind of menu bar change detected between two scans.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeShown   ChangeType = "shown"
	ChangeHidden  ChangeType = "hidden"
	ChangeMoved   ChangeType = "moved"
)

// ItemChange is a single change between two scans.
type ItemChange struct {
	Type     ChangeType `json:"type"`
	TS       int64      `json:"ts"`
	WindowID WindowID   `json:"window_id"`
	App      string     `json:"app,omitempty"`
	X        float64    `json:"x,omitempty"`
	PrevX    float64    `json:"prev_x,omitempty"`
}

// partitionEntry records which side of the separator an item was on.
type partitionEntry struct {
	item    Item
	visible bool
}

// DiffPartitions compares two visible/hidden partitions and returns the
// changes, matched by window id. Crossing the separator reports as shown or
// hidden; a horizontal move within the same side reports as moved.
func DiffPartitions(prevVisible, prevHidden, currVisible, currHidden []Item) []ItemChange {
	prev := indexPartition(prevVisible, prevHidden)
	curr := indexPartition(currVisible, currHidden)

	var changes []ItemChange
	now := time.Now().Unix()

	for id, c := range curr {
		p, existed := prev[id]
		if !existed {
			changes = append(changes, ItemChange{
				Type:     ChangeAdded,
				TS:       now,
				WindowID: id,
				App:      c.item.DisplayName(),
				X:        c.item.Frame.MinX(),
			})
			continue
		}
		switch {
		case c.visible && !p.visible:
			changes = append(changes, ItemChange{
				Type:     ChangeShown,
				TS:       now,
				WindowID: id,
				App:      c.item.DisplayName(),
				X:        c.item.Frame.MinX(),
				PrevX:    p.item.Frame.MinX(),
			})
		case !c.visible && p.visible:
			changes = append(changes, ItemChange{
				Type:     ChangeHidden,
				TS:       now,
				WindowID: id,
				App:      c.item.DisplayName(),
				X:        c.item.Frame.MinX(),
				PrevX:    p.item.Frame.MinX(),
			})
		case c.item.Frame.MinX() != p.item.Frame.MinX():
			changes = append(changes, ItemChange{
				Type:     ChangeMoved,
				TS:       now,
				WindowID: id,
				App:      c.item.DisplayName(),
				X:        c.item.Frame.MinX(),
				PrevX:    p.item.Frame.MinX(),
			})
		}
	}

	for id, p := range prev {
		if _, exists := curr[id]; !exists {
			changes = append(changes, ItemChange{
				Type:     ChangeRemoved,
				TS:       now,
				WindowID: id,
				App:      p.item.DisplayName(),
				PrevX:    p.item.Frame.MinX(),
			})
		}
	}

	return changes
}

func indexPartition(visible, hidden []Item) map[WindowID]partitionEntry {
	m := make(map[WindowID]partitionEntry, len(visible)+len(hidden))
	for _, it := range visible {
		m[it.WindowID] = partitionEntry{item: it, visible: true}
	}
	for _, it := range hidden {
		m[it.WindowID] = partitionEntry{item: it, visible: false}
	}
	return m
}
