package engine

import (
	"github.com/google/uuid"
	"github.com/stowbar/stowbar/internal/model"
)

// revealPhase names the steps of the temporary-show-and-click sequence.
type revealPhase int

const (
	revealIdle revealPhase = iota
	revealCollapsing
	revealScanning
	revealClicking
	revealWaiting
	revealRestoring
)

func (p revealPhase) String() string {
	switch p {
	case revealCollapsing:
		return "collapsing"
	case revealScanning:
		return "scanning"
	case revealClicking:
		return "clicking"
	case revealWaiting:
		return "waiting"
	case revealRestoring:
		return "restoring"
	default:
		return "idle"
	}
}

// Reveal temporarily collapses the separator so hidden items slide back
// on-screen, clicks the target at its fresh position, waits for the user
// to interact with whatever opened, then re-expands and rescans.
//
// No step is retried, and a mid-sequence failure still proceeds to the
// restore steps so the separator is never left collapsed. The engine lock
// is held for the whole sequence, so no other scan or gesture interleaves;
// a second caller blocks until this one finishes.
func (e *Engine) Reveal(target model.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.log.With("seq", uuid.NewString(), "target", target.DisplayName())

	var firstErr error
	fail := func(phase revealPhase, err error) {
		log.Error("reveal step failed", "phase", phase.String(), "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	log.Debug("reveal sequence started")

	// Collapsing: let hidden items slide back on-screen.
	if err := e.sep.SetState(Collapsed); err != nil {
		fail(revealCollapsing, err)
	}
	e.clock.Sleep(settleDelay)

	// Scanning: find where the target landed. On a miss, fall back to the
	// caller's stale snapshot of the item; clicking its old frame is
	// best-effort.
	e.scanLocked()
	resolved, found := e.snap.Find(target.WindowID)
	if !found {
		log.Warn("target missing from rescan, clicking stale frame")
		resolved = target
	}

	// Clicking.
	if err := e.clickLocked(resolved); err != nil {
		fail(revealClicking, err)
	}

	// Waiting: give the user time with whatever the click opened.
	e.clock.Sleep(postClickWait)

	// Restoring: the separator must end expanded no matter what failed
	// above.
	if err := e.sep.SetState(Expanded); err != nil {
		fail(revealRestoring, err)
	}
	e.clock.Sleep(settleDelay)
	e.scanLocked()

	log.Debug("reveal sequence finished", "error", firstErr != nil)
	return firstErr
}
