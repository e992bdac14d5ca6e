package model

import "testing"

func TestDedupByOwner_KeepsWidest(t *testing.T) {
	items := []Item{
		{WindowID: 1, OwnerPID: 42, Frame: Rect{X: 100, W: 80, H: 24}},
		{WindowID: 2, OwnerPID: 42, Frame: Rect{X: 200, W: 120, H: 24}},
		{WindowID: 3, OwnerPID: 7, Frame: Rect{X: 300, W: 30, H: 24}},
	}
	kept := DedupByOwner(items)
	if len(kept) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(kept))
	}
	for _, it := range kept {
		if it.OwnerPID == 42 && it.WindowID != 2 {
			t.Errorf("expected the 120-wide window for pid 42, got window %d", it.WindowID)
		}
	}
}

func TestDedupByOwner_Idempotent(t *testing.T) {
	items := []Item{
		{WindowID: 5, OwnerPID: 1, Frame: Rect{X: 400, W: 40, H: 24}},
		{WindowID: 6, OwnerPID: 2, Frame: Rect{X: 100, W: 30, H: 24}},
		{WindowID: 7, OwnerPID: 3, Frame: Rect{X: 250, W: 50, H: 24}},
	}
	first := DedupByOwner(items)
	second := DedupByOwner(first)
	if len(first) != len(second) {
		t.Fatalf("dedup not idempotent: %d then %d items", len(first), len(second))
	}
	for i := range first {
		if first[i].WindowID != second[i].WindowID {
			t.Errorf("order changed at %d: window %d then %d", i, first[i].WindowID, second[i].WindowID)
		}
	}
}

func TestDedupByOwner_SortsByPosition(t *testing.T) {
	items := []Item{
		{WindowID: 1, OwnerPID: 1, Frame: Rect{X: 300, W: 30, H: 24}},
		{WindowID: 2, OwnerPID: 2, Frame: Rect{X: 100, W: 30, H: 24}},
		{WindowID: 3, OwnerPID: 3, Frame: Rect{X: 200, W: 30, H: 24}},
	}
	kept := DedupByOwner(items)
	want := []WindowID{2, 3, 1}
	for i, id := range want {
		if kept[i].WindowID != id {
			t.Errorf("position %d: expected window %d, got %d", i, id, kept[i].WindowID)
		}
	}
}

func TestCommonOwner(t *testing.T) {
	tests := []struct {
		name    string
		pids    []int
		wantPID int
		want    bool
	}{
		{"all_same", []int{88, 88, 88}, 88, true},
		{"mixed", []int{88, 88, 7}, 0, false},
		{"single_item", []int{88}, 0, false},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []Item
			for i, pid := range tt.pids {
				items = append(items, Item{WindowID: WindowID(i + 1), OwnerPID: pid})
			}
			pid, ok := CommonOwner(items)
			if ok != tt.want || pid != tt.wantPID {
				t.Errorf("CommonOwner = (%d, %v), want (%d, %v)", pid, ok, tt.wantPID, tt.want)
			}
		})
	}
}
