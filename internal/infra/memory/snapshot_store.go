package memory

import (
	"context"
	"sync"

	"weird-animal-quiz/internal/quiz"
)

// SnapshotStore is the in-memory fallback for app.SnapshotStore, used when no
// Redis is configured. Snapshots survive reconnects within one process only.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]quiz.State
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snapshots: make(map[string]quiz.State)}
}

func (s *SnapshotStore) Save(_ context.Context, sessionID string, state quiz.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[sessionID] = state
	return nil
}

func (s *SnapshotStore) Load(_ context.Context, sessionID string) (quiz.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.snapshots[sessionID]
	return state, ok, nil
}

func (s *SnapshotStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}
