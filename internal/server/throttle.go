// Package server holds shared pieces of the MCP tool surface.
package server

import (
	"sync"
	"time"

	"github.com/stowbar/stowbar/internal/engine"
)

// Scanner is the slice of the engine the throttle needs.
type Scanner interface {
	Scan()
	Current() engine.Snapshot
}

// ScanThrottle rate-limits scans triggered by MCP tool calls. Agents tend
// to issue bursts of list calls; within the TTL they all read the same
// snapshot instead of each forcing a fresh enumeration.
type ScanThrottle struct {
	mu   sync.Mutex
	ttl  time.Duration
	last time.Time
}

// NewScanThrottle creates a throttle. A ttl of 0 disables throttling and
// every call scans fresh.
func NewScanThrottle(ttl time.Duration) *ScanThrottle {
	return &ScanThrottle{ttl: ttl}
}

// Snapshot returns a current snapshot, scanning first unless one was taken
// within the TTL.
func (t *ScanThrottle) Snapshot(s Scanner) engine.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ttl == 0 || time.Since(t.last) >= t.ttl {
		s.Scan()
		t.last = time.Now()
	}
	return s.Current()
}

// Invalidate forces the next Snapshot call to scan, used after any tool
// that mutates the bar.
func (t *ScanThrottle) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Time{}
}
