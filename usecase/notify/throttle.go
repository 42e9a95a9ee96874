package notify

import (
	"sync"
	"time"
)

// gate collapses repeated scan triggers into at most one real scan per
// cooldown window. It is in-memory only; a restart resets the window.
type gate struct {
	mu   sync.Mutex
	last time.Time
}

// shouldRun reports whether a scan may execute at now. It does not advance
// the gate; callers mark the run only after the scan actually happened.
func (g *gate) shouldRun(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last.IsZero() || now.Sub(g.last) >= scanCooldown
}

func (g *gate) markRun(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = now
}
