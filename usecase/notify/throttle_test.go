package notify

import (
	"testing"
	"time"
)

func TestGateFirstRunAllowed(t *testing.T) {
	var g gate
	if !g.shouldRun(time.Now()) {
		t.Fatal("fresh gate should allow the first run")
	}
}

func TestGateEnforcesCooldown(t *testing.T) {
	var g gate
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g.markRun(start)

	if g.shouldRun(start.Add(30 * time.Minute)) {
		t.Fatal("run inside the cooldown window should be blocked")
	}
	if g.shouldRun(start.Add(59 * time.Minute)) {
		t.Fatal("run just before the window closes should be blocked")
	}
	if !g.shouldRun(start.Add(time.Hour)) {
		t.Fatal("run exactly at the cooldown boundary should be allowed")
	}
	if !g.shouldRun(start.Add(61 * time.Minute)) {
		t.Fatal("run after the cooldown should be allowed")
	}
}

func TestGateCheckDoesNotAdvance(t *testing.T) {
	var g gate
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	g.shouldRun(start)
	g.shouldRun(start.Add(time.Minute))
	if !g.shouldRun(start.Add(2 * time.Minute)) {
		t.Fatal("shouldRun alone must not start the cooldown")
	}
}
