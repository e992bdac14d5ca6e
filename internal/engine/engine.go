package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/stowbar/stowbar/internal/logging"
	"github.com/stowbar/stowbar/internal/model"
	"github.com/stowbar/stowbar/internal/platform"
)

// Timing constants for the host's asynchronous layout engine. The settle
// delay is how long a separator width change takes to become observable;
// the event pause separates synthetic pointer events so the system menu
// bar registers them as one gesture.
const (
	settleDelay   = 200 * time.Millisecond
	eventPause    = 100 * time.Millisecond
	postClickWait = 2 * time.Second

	// toggleMargin is how far past the separator's edge an item is dragged
	// when crossing sides.
	toggleMargin = 8.0
)

// Options configures a new Engine.
type Options struct {
	Provider *platform.Provider

	// DenyOwners adds configured bundle ids or names to the fixed system
	// deny-list.
	DenyOwners []string

	// Clock defaults to the wall clock. Tests inject a fake to drive timed
	// sequences instantly.
	Clock Clock

	Logger *slog.Logger
}

// Engine owns all mutable overflow state: the current snapshot, the
// separator, and any in-flight move or reveal sequence. One mutex
// serializes every mutation, and it is held across the intentional settle
// pauses, so a scan never observes a sequence mid-flight. Host calls carry
// no timeouts; a stuck call stalls the engine (accepted limitation).
type Engine struct {
	mu sync.Mutex

	gateway platform.WindowGateway
	input   platform.InputPoster
	procs   platform.ProcessResolver
	display platform.DisplayMetrics

	sep        *Separator
	denyOwners []string

	snap  Snapshot
	subs  []chan Snapshot
	clock Clock
	log   *slog.Logger
}

// New constructs an Engine over the platform provider. The separator's
// status items are not registered until CreateItems; without them, scans
// classify via the on-screen fallback.
func New(opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Component(logging.CompEngine)
	}
	return &Engine{
		gateway:    opts.Provider.Gateway,
		input:      opts.Provider.Input,
		procs:      opts.Provider.Processes,
		display:    opts.Provider.Display,
		sep:        newSeparator(opts.Provider.StatusItems),
		denyOwners: opts.DenyOwners,
		clock:      clock,
		log:        log,
	}
}

// CreateItems registers the separator and chevron with the host status
// bar. onChevron runs when the chevron is clicked; it arrives on the
// host's UI thread, so handlers must call back into the engine's public
// API rather than touch state directly.
func (e *Engine) CreateItems(onChevron func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sep.Create(onChevron)
}

// Close removes the engine's status items from the host bar.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sep.Close()
}

// Scan runs one full scan cycle and installs a fresh snapshot. Safe to
// call at any time; idempotent for an unchanged menu bar.
func (e *Engine) Scan() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scanLocked()
}

// tryScan is the ticker entry point: if a scan or timed sequence is in
// flight, the tick is dropped rather than queued, so two scans never
// classify against different separator states back to back.
func (e *Engine) tryScan() bool {
	if !e.mu.TryLock() {
		return false
	}
	defer e.mu.Unlock()
	e.scanLocked()
	return true
}

// Run drives periodic scans until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	e.log.Info("scanner started", "interval", interval)
	e.Scan()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.log.Info("scanner stopped")
			return
		case <-ticker.C:
			if !e.tryScan() {
				e.log.Debug("scan in flight, tick dropped")
			}
		}
	}
}

// Current returns the latest snapshot. The copy shares no state with the
// scanner.
func (e *Engine) Current() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap.clone()
}

// Subscribe returns a channel receiving each new snapshot. Delivery is
// latest-wins: a slow reader sees the freshest snapshot, not a backlog.
func (e *Engine) Subscribe() <-chan Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan Snapshot, 1)
	e.subs = append(e.subs, ch)
	return ch
}

// SeparatorState returns the separator's logical state.
func (e *Engine) SeparatorState() SeparatorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sep.State()
}

// SetSeparatorState toggles the separator and rescans once the host's
// layout pass has settled.
func (e *Engine) SetSeparatorState(state SeparatorState) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.sep.SetState(state); err != nil {
		return err
	}
	e.clock.Sleep(settleDelay)
	e.scanLocked()
	return nil
}

// Movable reports whether move gestures are allowed on the item.
func (e *Engine) Movable(it model.Item) bool { return !e.denied(it) }

// Hideable reports whether the item may be pushed to the hidden side.
func (e *Engine) Hideable(it model.Item) bool { return !e.denied(it) }

func (e *Engine) denied(it model.Item) bool {
	if systemItem(it) {
		return true
	}
	for _, owner := range e.denyOwners {
		if strings.EqualFold(owner, it.BundleID) || strings.EqualFold(owner, it.DisplayName()) {
			return true
		}
	}
	return false
}

// scanLocked produces one consistent snapshot. Per-window failures drop
// that window only; any cycle that gets this far installs a replacement
// snapshot, even an empty one.
func (e *Engine) scanLocked() {
	start := e.clock.Now()

	ids, err := e.gateway.MenuBarWindows()
	if err != nil {
		e.log.Error("menu bar enumeration failed", "error", err)
	}
	if len(ids) == 0 {
		e.install(Snapshot{At: start})
		return
	}

	onScreen := make(map[model.WindowID]bool)
	if onIDs, err := e.gateway.OnScreenWindows(); err == nil {
		for _, id := range onIDs {
			onScreen[id] = true
		}
	}

	metas, err := e.gateway.WindowMetadata(ids)
	if err != nil {
		e.log.Error("window metadata query failed", "error", err)
	}

	items := e.collectItems(ids, metas, onScreen)

	// Display metrics are read fresh so monitor changes take effect on the
	// next cycle.
	bounds := e.display.MainScreenBounds()
	items = model.FilterMenuBarItems(items, bounds.Y, e.display.MenuBarHeight())

	items = e.resolveOwners(items)

	misattributed := e.detectMisattribution(items)
	if misattributed {
		// Ownership data is untrusted: keep every window individually and
		// partition purely by position.
		model.SortByPosition(items)
	} else {
		items = e.dropSystemItems(items)
		items = model.DedupByOwner(items)
	}

	sepFrame, sepOK := e.sep.Frame()
	visible, hidden := model.Partition(items, sepFrame, sepOK)

	e.install(Snapshot{
		Visible:       visible,
		Hidden:        hidden,
		At:            start,
		Misattributed: misattributed,
	})
	e.log.Debug("scan complete",
		"visible", len(visible),
		"hidden", len(hidden),
		"misattributed", misattributed,
		"separator_frame", sepOK)
}

// collectItems builds raw items from the enumeration, excluding the
// engine's own windows and dropping any window without usable geometry.
func (e *Engine) collectItems(ids []model.WindowID, metas map[model.WindowID]platform.WindowMeta, onScreen map[model.WindowID]bool) []model.Item {
	own := make(map[model.WindowID]bool, 2)
	if id, ok := e.sep.WindowID(); ok {
		own[id] = true
	}
	if id, ok := e.sep.ChevronWindowID(); ok {
		own[id] = true
	}

	var items []model.Item
	for _, id := range ids {
		if own[id] {
			continue
		}
		meta := metas[id]
		frame := meta.Bounds
		if frame.IsDegenerate() {
			f, ok := e.gateway.WindowFrame(id)
			if !ok {
				continue
			}
			frame = f
		}
		items = append(items, model.Item{
			WindowID:  id,
			Frame:     frame,
			OwnerPID:  meta.OwnerPID,
			OwnerName: meta.OwnerName,
			Title:     meta.Title,
			OnScreen:  meta.OnScreen || onScreen[id],
		})
	}
	return items
}

// resolveOwners fills resolved names and bundle ids from the live process
// table and drops windows with no resolvable owner.
func (e *Engine) resolveOwners(items []model.Item) []model.Item {
	kept := items[:0]
	for _, it := range items {
		if it.OwnerPID <= 0 {
			continue
		}
		if info, ok := e.procs.Lookup(it.OwnerPID); ok {
			it.ResolvedName = info.Name
			it.BundleID = info.BundleID
		}
		kept = append(kept, it)
	}
	return kept
}

// detectMisattribution checks for the host defect where every surviving
// window is reported under one owner pid that resolves to the window
// server shell.
func (e *Engine) detectMisattribution(items []model.Item) bool {
	pid, ok := model.CommonOwner(items)
	if !ok {
		return false
	}
	info, ok := e.procs.Lookup(pid)
	if !ok || info.BundleID != shellBundleID {
		return false
	}
	e.log.Warn("ownership misattribution detected, dedup and deny-list suspended",
		"pid", pid, "windows", len(items))
	return true
}

func (e *Engine) dropSystemItems(items []model.Item) []model.Item {
	kept := items[:0]
	for _, it := range items {
		if e.denied(it) {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// install swaps in the new snapshot and notifies subscribers, replacing
// any undelivered snapshot so readers always see the freshest one.
func (e *Engine) install(snap Snapshot) {
	e.snap = snap
	for _, ch := range e.subs {
		select {
		case ch <- snap.clone():
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap.clone():
			default:
			}
		}
	}
}
