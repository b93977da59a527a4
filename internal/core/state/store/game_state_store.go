package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

// GameStateStore is a thread-safe map of the live context per sport. Each
// sport has at most one match in progress.
//
// The RWMutex protects the map itself. It does NOT protect GameContext
// contents; each GameContext serializes its own state through its inbox.
type GameStateStore struct {
	mu    sync.RWMutex
	games map[events.Sport]*game.GameContext
}

var ErrNoMatch = errors.New("no active match")

func New() *GameStateStore {
	return &GameStateStore{
		games: make(map[events.Sport]*game.GameContext),
	}
}

func (s *GameStateStore) Get(sport events.Sport) (*game.GameContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gc, ok := s.games[sport]
	return gc, ok
}

// Require is Get for callers that report a missing match as an error.
func (s *GameStateStore) Require(sport events.Sport) (*game.GameContext, error) {
	if gc, ok := s.Get(sport); ok {
		return gc, nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoMatch, sport)
}

// Put stores gc, closing any context it replaces.
func (s *GameStateStore) Put(gc *game.GameContext) {
	s.mu.Lock()
	old, ok := s.games[gc.Sport]
	s.games[gc.Sport] = gc
	n := len(s.games)
	s.mu.Unlock()

	telemetry.Metrics.ActiveMatches.Set(int64(n))
	if ok && old != gc {
		old.Close()
	}
}

// Delete removes a sport's context and shuts down its goroutine.
func (s *GameStateStore) Delete(sport events.Sport) {
	s.mu.Lock()
	gc, ok := s.games[sport]
	delete(s.games, sport)
	n := len(s.games)
	s.mu.Unlock()

	telemetry.Metrics.ActiveMatches.Set(int64(n))
	if ok {
		gc.Close()
	}
}

// All returns a snapshot of all contexts. Safe for iteration.
func (s *GameStateStore) All() []*game.GameContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*game.GameContext, 0, len(s.games))
	for _, gc := range s.games {
		out = append(out, gc)
	}
	return out
}

func (s *GameStateStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// CloseAll shuts down every context.
func (s *GameStateStore) CloseAll() {
	s.mu.Lock()
	games := s.games
	s.games = make(map[events.Sport]*game.GameContext)
	s.mu.Unlock()

	telemetry.Metrics.ActiveMatches.Set(0)
	for _, gc := range games {
		gc.Close()
	}
}
