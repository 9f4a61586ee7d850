package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"weird-animal-quiz/internal/quiz"
)

// SnapshotStore persists quiz state mirrors as JSON values with a TTL. It is
// best-effort by contract: the in-process session stays authoritative, and a
// corrupt or missing snapshot simply means the run starts fresh.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

func (s *SnapshotStore) Save(ctx context.Context, sessionID string, state quiz.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, sessionID string) (quiz.State, bool, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return quiz.State{}, false, nil
	}
	if err != nil {
		return quiz.State{}, false, fmt.Errorf("load snapshot: %w", err)
	}
	var state quiz.State
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt snapshot is treated as absent, not fatal.
		return quiz.State{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return state, true, nil
}

func (s *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SnapshotStore) key(sessionID string) string {
	return "animalquiz:session:" + sessionID
}
