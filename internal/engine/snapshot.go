package engine

import (
	"time"

	"github.com/stowbar/stowbar/internal/model"
)

// Snapshot is one scan's partition of menu bar items relative to the
// separator. Snapshots are immutable: the scanner builds a fresh one each
// cycle and swaps it in wholesale.
type Snapshot struct {
	Visible []model.Item `yaml:"visible" json:"visible"`
	Hidden  []model.Item `yaml:"hidden"  json:"hidden"`
	At      time.Time    `yaml:"at"      json:"at"`

	// Misattributed marks a cycle where the host reported every item under
	// one owner pid resolving to the window server shell. Deduplication and
	// the system deny-list were suspended for this cycle because ownership
	// data cannot be trusted.
	Misattributed bool `yaml:"misattributed,omitempty" json:"misattributed,omitempty"`
}

// Total returns the number of items across both sides.
func (s Snapshot) Total() int { return len(s.Visible) + len(s.Hidden) }

// Find returns the item with the given window id from either side.
func (s Snapshot) Find(id model.WindowID) (model.Item, bool) {
	for _, it := range s.Visible {
		if it.WindowID == id {
			return it, true
		}
	}
	for _, it := range s.Hidden {
		if it.WindowID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// DiffFrom returns the changes from prev to this snapshot.
func (s Snapshot) DiffFrom(prev Snapshot) []model.ItemChange {
	return model.DiffPartitions(prev.Visible, prev.Hidden, s.Visible, s.Hidden)
}

// clone returns a copy whose slices do not alias the original, so readers
// on other goroutines never share mutable state with the scanner.
func (s Snapshot) clone() Snapshot {
	out := s
	out.Visible = append([]model.Item(nil), s.Visible...)
	out.Hidden = append([]model.Item(nil), s.Hidden...)
	return out
}
