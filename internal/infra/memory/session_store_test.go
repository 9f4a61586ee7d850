package memory

import (
	"context"
	"testing"
	"time"

	"weird-animal-quiz/internal/quiz"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("run-1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("run-1"); again != session {
		t.Fatalf("expected the same session instance")
	}
	if _, ok := store.Get("run-1"); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete("run-1")
	if _, ok := store.Get("run-1"); ok {
		t.Fatalf("expected session removed")
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	state := quiz.NewState()
	state.TimeRemaining = 12
	state.StartedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := store.Save(ctx, "run-1", state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := store.Load(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.TimeRemaining != 12 {
		t.Fatalf("expected restored timer, got %d", got.TimeRemaining)
	}

	if err := store.Delete(ctx, "run-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "run-1"); ok {
		t.Fatalf("expected snapshot removed")
	}
}
