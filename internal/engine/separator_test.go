package engine

import "testing"

func TestSeparator_StartsExpanded(t *testing.T) {
	f := newFixture()
	if err := f.engine.CreateItems(nil); err != nil {
		t.Fatal(err)
	}
	if !f.host.created {
		t.Fatal("status items not registered")
	}
	if got := f.engine.SeparatorState(); got != Expanded {
		t.Errorf("separator should start expanded, got %s", got)
	}
	if len(f.host.widths) != 1 || f.host.widths[0] != SentinelWidth {
		t.Errorf("separator should be created at the sentinel width, got %v", f.host.widths)
	}
}

func TestSeparator_ToggleRoundTrip(t *testing.T) {
	f := newFixture()
	if err := f.engine.CreateItems(nil); err != nil {
		t.Fatal(err)
	}

	for _, state := range []SeparatorState{Expanded, Collapsed, Expanded} {
		if err := f.engine.SetSeparatorState(state); err != nil {
			t.Fatalf("SetSeparatorState(%s): %v", state, err)
		}
	}

	if got := f.engine.SeparatorState(); got != Expanded {
		t.Errorf("final state should be expanded, got %s", got)
	}
	last := f.host.widths[len(f.host.widths)-1]
	if last != SentinelWidth {
		t.Errorf("final width should equal the sentinel %v, got %v", SentinelWidth, last)
	}
}

func TestSetSeparatorState_WaitsAndRescans(t *testing.T) {
	f := newFixture()
	if err := f.engine.CreateItems(nil); err != nil {
		t.Fatal(err)
	}
	scansBefore := f.gateway.menuBarCalls

	if err := f.engine.SetSeparatorState(Collapsed); err != nil {
		t.Fatal(err)
	}

	if f.gateway.menuBarCalls != scansBefore+1 {
		t.Errorf("expected one rescan after the toggle, got %d", f.gateway.menuBarCalls-scansBefore)
	}
	if len(f.clock.sleeps) == 0 || f.clock.sleeps[len(f.clock.sleeps)-1] != settleDelay {
		t.Errorf("toggle must wait the settle delay before rescanning, sleeps: %v", f.clock.sleeps)
	}
}

func TestSeparatorState_String(t *testing.T) {
	if Expanded.String() != "expanded" || Collapsed.String() != "collapsed" {
		t.Errorf("unexpected state names: %s, %s", Expanded, Collapsed)
	}
}
