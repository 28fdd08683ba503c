package services

import (
	"sync"
	"time"
)

// GuardSet hands out one RefreshGuard per user. The guard protects a single
// session's refresh cycle; one user's cooldown must never drop another
// user's refresh.
type GuardSet struct {
	mu       sync.Mutex
	guards   map[string]*RefreshGuard
	cooldown time.Duration
}

func NewGuardSet(cooldown time.Duration) *GuardSet {
	return &GuardSet{guards: make(map[string]*RefreshGuard), cooldown: cooldown}
}

// For returns the guard for the given user, creating it on first use.
func (s *GuardSet) For(userID string) *RefreshGuard {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guards[userID]
	if !ok {
		g = NewRefreshGuard(s.cooldown)
		s.guards[userID] = g
	}
	return g
}

// RefreshGuard drops overlapping refreshes. A refresh requested while one is
// in flight, or during the cooldown after one finished, is ignored rather
// than queued.
type RefreshGuard struct {
	mu       sync.Mutex
	busy     bool
	cooldown time.Duration
}

func NewRefreshGuard(cooldown time.Duration) *RefreshGuard {
	return &RefreshGuard{cooldown: cooldown}
}

// TryBegin claims the guard. It returns false if a refresh is already in
// flight or cooling down.
func (g *RefreshGuard) TryBegin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

// Finish releases the guard after the cooldown elapses.
func (g *RefreshGuard) Finish() {
	if g.cooldown <= 0 {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
		return
	}
	time.AfterFunc(g.cooldown, func() {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
	})
}
