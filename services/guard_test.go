package services

import (
	"testing"
	"time"
)

func TestRefreshGuardDropsOverlap(t *testing.T) {
	g := NewRefreshGuard(50 * time.Millisecond)

	if !g.TryBegin() {
		t.Fatal("first claim should succeed")
	}
	if g.TryBegin() {
		t.Fatal("claim while in flight should be dropped")
	}

	g.Finish()
	if g.TryBegin() {
		t.Fatal("claim during cooldown should be dropped")
	}

	time.Sleep(150 * time.Millisecond)
	if !g.TryBegin() {
		t.Fatal("claim after cooldown should succeed")
	}
}

func TestRefreshGuardZeroCooldown(t *testing.T) {
	g := NewRefreshGuard(0)

	if !g.TryBegin() {
		t.Fatal("first claim should succeed")
	}
	g.Finish()
	if !g.TryBegin() {
		t.Fatal("zero cooldown should release immediately")
	}
}
