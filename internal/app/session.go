package app

import (
	"sync"

	"weird-animal-quiz/internal/quiz"
)

// Session owns the canonical state of one quiz run. All mutation flows
// through Dispatch, which applies the pure reducer under the lock and fans
// the resulting snapshot out to subscribers.
type Session struct {
	id string

	mu          sync.RWMutex
	state       quiz.State
	subscribers map[chan Snapshot]struct{}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(id string) *Session {
	return &Session{
		id:          id,
		state:       quiz.NewState(),
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns a copy of the current state.
func (s *Session) State() quiz.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and returns the resulting state.
func (s *Session) Dispatch(action quiz.Action) quiz.State {
	_, next := s.Apply(action)
	return next
}

// Apply is Dispatch returning the state both before and after the action, so
// callers can tell atomically whether the reducer accepted it.
func (s *Session) Apply(action quiz.Action) (quiz.State, quiz.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.state
	s.state = quiz.Reduce(s.state, action)
	s.broadcastLocked()
	return prev, s.state
}

// Restore replaces the state wholesale, used when resuming from a persisted
// snapshot. The restored run stays paused until the client resumes.
func (s *Session) Restore(state quiz.State) quiz.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.Paused = true
	s.state = state
	s.broadcastLocked()
	return s.state
}

// Subscribe returns a channel that receives a snapshot after every
// transition, primed with the current one. The caller must invoke the cancel
// function to avoid leaks.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := snapshotOf(s.id, s.state)
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() {
	snap := snapshotOf(s.id, s.state)
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale frame so a slow consumer never blocks dispatch.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
