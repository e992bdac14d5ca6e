package engine

import (
	"testing"

	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

func TestScan_EmptyEnumerationInstallsEmptySnapshot(t *testing.T) {
	f := newFixture()
	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Total() != 0 {
		t.Errorf("expected empty snapshot, got %d items", snap.Total())
	}
	if snap.At.IsZero() {
		t.Error("empty cycle must still install a timestamped snapshot")
	}
}

func TestScan_ExcludesOwnWindows(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 700, Y: 0, W: 10, H: 24}
	// Separator and chevron show up in the enumeration like any other item.
	f.gateway.setBarWindow(9001, 700, 10, 500, "stowbar")
	f.gateway.setBarWindow(9002, 720, 24, 500, "stowbar")
	f.gateway.setBarWindow(10, 800, 30, 42, "Dropbox")
	f.procs.infos[42] = platform.ProcessInfo{PID: 42, Name: "Dropbox", BundleID: "com.dropbox.client"}

	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Total() != 1 {
		t.Fatalf("expected 1 item after excluding engine windows, got %d", snap.Total())
	}
	if snap.Visible[0].WindowID != 10 {
		t.Errorf("expected window 10 to survive, got %d", snap.Visible[0].WindowID)
	}
}

func TestScan_DedupKeepsWidestPerOwner(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}
	f.gateway.setBarWindow(1, 100, 80, 42, "Dropbox")
	f.gateway.setBarWindow(2, 300, 120, 42, "Dropbox")
	f.procs.infos[42] = platform.ProcessInfo{PID: 42, Name: "Dropbox", BundleID: "com.dropbox.client"}

	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Total() != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", snap.Total())
	}
	if it, _ := snap.Find(2); it.Frame.W != 120 {
		t.Errorf("expected the 120-wide window to survive")
	}
}

func TestScan_MisattributionKeepsEveryWindow(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 500, Y: 0, W: 10, H: 24}
	// Every window reports the same owner pid, and that pid resolves to
	// the window server shell: ownership is untrusted this cycle.
	f.gateway.setBarWindow(1, 100, 30, 88, "WindowServer")
	f.gateway.setBarWindow(2, 200, 30, 88, "WindowServer")
	f.gateway.setBarWindow(3, 600, 30, 88, "WindowServer")
	f.procs.infos[88] = platform.ProcessInfo{PID: 88, Name: "WindowServer", BundleID: "com.apple.WindowServer"}

	f.engine.Scan()

	snap := f.engine.Current()
	if !snap.Misattributed {
		t.Error("snapshot should be flagged misattributed")
	}
	if snap.Total() != 3 {
		t.Fatalf("expected all 3 windows kept individually, got %d", snap.Total())
	}
	if len(snap.Visible) != 1 || len(snap.Hidden) != 2 {
		t.Errorf("expected 1 visible / 2 hidden by position, got %d / %d",
			len(snap.Visible), len(snap.Hidden))
	}
}

func TestScan_NoMisattributionForOrdinarySharedOwner(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}
	f.gateway.setBarWindow(1, 100, 80, 42, "Dropbox")
	f.gateway.setBarWindow(2, 300, 120, 42, "Dropbox")
	f.procs.infos[42] = platform.ProcessInfo{PID: 42, Name: "Dropbox", BundleID: "com.dropbox.client"}

	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Misattributed {
		t.Error("a shared owner that is not the shell must not trigger misattribution mode")
	}
	if snap.Total() != 1 {
		t.Errorf("dedup should still apply, got %d items", snap.Total())
	}
}

func TestScan_FiveWindowPartition(t *testing.T) {
	f := newFixture()
	// Separator right edge at x=800.
	f.host.frame = model.Rect{X: 790, Y: 0, W: 10, H: 24}
	f.gateway.setBarWindow(1, 850, 30, 11, "App1")
	f.gateway.setBarWindow(2, 900, 30, 12, "App2")
	f.gateway.setBarWindow(3, 950, 30, 13, "App3")
	f.gateway.setBarWindow(4, -50, 30, 14, "App4")
	f.gateway.setBarWindow(5, -10, 30, 15, "App5")
	for pid := 11; pid <= 15; pid++ {
		f.procs.infos[pid] = platform.ProcessInfo{PID: pid, Name: "App", BundleID: "com.example.app"}
	}

	f.engine.Scan()

	snap := f.engine.Current()
	wantVisible := []float64{850, 900, 950}
	wantHidden := []float64{-50, -10}
	if len(snap.Visible) != 3 || len(snap.Hidden) != 2 {
		t.Fatalf("got %d visible / %d hidden, want 3 / 2", len(snap.Visible), len(snap.Hidden))
	}
	for i, x := range wantVisible {
		if snap.Visible[i].Frame.MinX() != x {
			t.Errorf("visible[%d] at %v, want %v", i, snap.Visible[i].Frame.MinX(), x)
		}
	}
	for i, x := range wantHidden {
		if snap.Hidden[i].Frame.MinX() != x {
			t.Errorf("hidden[%d] at %v, want %v", i, snap.Hidden[i].Frame.MinX(), x)
		}
	}
}

func TestScan_FallbackClassificationWithoutSeparatorFrame(t *testing.T) {
	f := newFixture()
	f.host.frameOK = false
	f.gateway.setBarWindow(1, 100, 30, 11, "App1")
	f.gateway.setBarWindow(2, -40, 30, 12, "App2")
	f.procs.infos[11] = platform.ProcessInfo{PID: 11, Name: "App1", BundleID: "com.example.app1"}
	f.procs.infos[12] = platform.ProcessInfo{PID: 12, Name: "App2", BundleID: "com.example.app2"}

	f.engine.Scan()

	snap := f.engine.Current()
	if len(snap.Visible) != 1 || snap.Visible[0].WindowID != 1 {
		t.Errorf("fallback should classify window 1 visible, got %d visible", len(snap.Visible))
	}
	if len(snap.Hidden) != 1 || snap.Hidden[0].WindowID != 2 {
		t.Errorf("fallback should classify window 2 hidden, got %d hidden", len(snap.Hidden))
	}
}

func TestScan_DropsWindowsWithoutOwnerOrGeometry(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}
	f.gateway.setBarWindow(1, 100, 30, 11, "App1")
	f.procs.infos[11] = platform.ProcessInfo{PID: 11, Name: "App1", BundleID: "com.example.app1"}
	// Window 2: owner pid 0, unresolvable.
	f.gateway.setBarWindow(2, 200, 30, 0, "")
	// Window 3: in the registry but with no metadata and no frame.
	f.gateway.menuBar = append(f.gateway.menuBar, 3)

	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Total() != 1 {
		t.Fatalf("expected only window 1 to survive, got %d items", snap.Total())
	}
	if _, found := snap.Find(1); !found {
		t.Error("window 1 should have survived the scan")
	}
}

func TestScan_DropsSystemDenyListedItems(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}
	f.gateway.setBarWindow(1, 100, 30, 11, "Control Center")
	f.gateway.setBarWindow(2, 200, 30, 12, "Siri")
	f.gateway.setBarWindow(3, 300, 30, 13, "Dropbox")
	f.procs.infos[11] = platform.ProcessInfo{PID: 11, Name: "Control Center", BundleID: "com.apple.controlcenter"}
	f.procs.infos[12] = platform.ProcessInfo{PID: 12, Name: "Siri", BundleID: "com.apple.Siri"}
	f.procs.infos[13] = platform.ProcessInfo{PID: 13, Name: "Dropbox", BundleID: "com.dropbox.client"}

	f.engine.Scan()

	snap := f.engine.Current()
	if snap.Total() != 1 {
		t.Fatalf("expected only the third-party item to survive, got %d", snap.Total())
	}
	if _, found := snap.Find(3); !found {
		t.Error("the third-party item should have survived")
	}
}

func TestSubscribe_LatestWins(t *testing.T) {
	f := newFixture()
	ch := f.engine.Subscribe()

	f.gateway.setBarWindow(1, 100, 30, 11, "App1")
	f.procs.infos[11] = platform.ProcessInfo{PID: 11, Name: "App1", BundleID: "com.example.app1"}
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}

	// Two scans without the subscriber reading: only the latest snapshot
	// is delivered.
	f.engine.Scan()
	f.gateway.setBarWindow(2, 200, 30, 12, "App2")
	f.procs.infos[12] = platform.ProcessInfo{PID: 12, Name: "App2", BundleID: "com.example.app2"}
	f.engine.Scan()

	snap := <-ch
	if snap.Total() != 2 {
		t.Errorf("subscriber should see the latest snapshot with 2 items, got %d", snap.Total())
	}
	select {
	case extra := <-ch:
		t.Errorf("no second snapshot should be queued, got one with %d items", extra.Total())
	default:
	}
}

func TestCurrent_ReturnsIndependentCopy(t *testing.T) {
	f := newFixture()
	f.host.frame = model.Rect{X: 0, Y: 0, W: 0, H: 24}
	f.gateway.setBarWindow(1, 100, 30, 11, "App1")
	f.procs.infos[11] = platform.ProcessInfo{PID: 11, Name: "App1", BundleID: "com.example.app1"}

	f.engine.Scan()
	first := f.engine.Current()
	first.Visible[0].OwnerPID = 999

	second := f.engine.Current()
	if second.Visible[0].OwnerPID == 999 {
		t.Error("mutating a returned snapshot must not affect the engine's state")
	}
}
