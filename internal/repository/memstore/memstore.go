// Package memstore implements the repository in memory. It backs tests and the
// "memory" backend, and deep-copies on both sides so callers never share state
// with the store.
package memstore

import (
	"context"
	"sync"

	"github.com/ZachR72/Lineup-Maker/internal/entities"
)

// Store holds the team collection in memory.
type Store struct {
	mu    sync.Mutex
	teams []entities.Team
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// OnStart is a no-op.
func (s *Store) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op.
func (s *Store) OnStop(_ context.Context) error { return nil }

// Load returns a deep copy of the stored collection.
func (s *Store) Load(_ context.Context) []entities.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.Clone())
	}
	return out
}

// Save replaces the stored collection with a deep copy of teams.
func (s *Store) Save(_ context.Context, teams []entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make([]entities.Team, 0, len(teams))
	for _, t := range teams {
		s.teams = append(s.teams, t.Clone())
	}
}
