package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"weird-animal-quiz/internal/domain"
	"weird-animal-quiz/internal/hint"
	"weird-animal-quiz/internal/quiz"
	"weird-animal-quiz/internal/scoring"
)

// SessionRepository abstracts where live quiz runs are kept.
type SessionRepository interface {
	GetOrCreate(sessionID string) *Session
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// BankRepository loads question banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// SnapshotStore persists best-effort state mirrors so an interrupted run can
// be picked up again. It is never authoritative: every operation may fail
// without affecting the quiz.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, state quiz.State) error
	Load(ctx context.Context, sessionID string) (quiz.State, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// QuizService contains the quiz use cases: session lifecycle, answer and hint
// flows, the externally driven timer, and results.
type QuizService struct {
	sessions  SessionRepository
	banks     BankRepository
	snapshots SnapshotStore
	now       func() time.Time
	newID     func() string

	hintMu sync.Mutex
	hints  *hint.Generator
}

func NewQuizService(sessions SessionRepository, banks BankRepository, snapshots SnapshotStore) *QuizService {
	return &QuizService{
		sessions:  sessions,
		banks:     banks,
		snapshots: snapshots,
		now:       time.Now,
		newID:     uuid.NewString,
		hints:     hint.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// WithClock overrides the clock, for deterministic tests.
func (s *QuizService) WithClock(now func() time.Time) *QuizService {
	s.now = now
	return s
}

// WithHintGenerator overrides the hint generator, for deterministic tests.
func (s *QuizService) WithHintGenerator(g *hint.Generator) *QuizService {
	s.hints = g
	return s
}

// Start begins a quiz run for the given bank. A blank session ID gets a
// generated one. When a persisted snapshot for the session exists and is
// still in flight, the run resumes from it instead of starting over.
func (s *QuizService) Start(ctx context.Context, sessionID, bankID string) (string, Snapshot, error) {
	bank, err := s.banks.GetBank(ctx, bankID)
	if err != nil {
		return "", Snapshot{}, err
	}
	if err := domain.ValidateBank(bank); err != nil {
		return "", Snapshot{}, err
	}

	if sessionID == "" {
		sessionID = s.newID()
	}
	session := s.sessions.GetOrCreate(sessionID)

	if restored, ok := s.loadSnapshot(ctx, sessionID); ok && restored.Initialized() && !restored.Complete {
		state := session.Restore(restored)
		return sessionID, snapshotOf(sessionID, state), nil
	}

	session.Dispatch(quiz.Initialize{Questions: bank.Questions, At: s.now()})
	state := session.Dispatch(quiz.StartTimer{})
	s.saveSnapshot(ctx, sessionID, state)
	return sessionID, snapshotOf(sessionID, state), nil
}

// SubmitAnswer records the player's answer for the current question and
// returns the per-answer feedback with the new snapshot.
func (s *QuizService) SubmitAnswer(ctx context.Context, sessionID, answerID string, timeSpent int) (AnswerFeedback, Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return AnswerFeedback{}, Snapshot{}, domain.ErrSessionNotFound
	}

	prev, state := session.Apply(quiz.SubmitAnswer{AnswerID: answerID, TimeSpent: timeSpent, At: s.now()})
	if len(state.Responses) == len(prev.Responses) {
		// The reducer refused the submission: no current question, or the run
		// completed or was reset out from under us.
		return AnswerFeedback{}, Snapshot{}, domain.ErrNoActiveQuestion
	}
	s.saveSnapshot(ctx, sessionID, state)

	question, _ := prev.CurrentQuestion()
	correctID := ""
	if correct, found := question.CorrectAnswer(); found {
		correctID = correct.ID
	}
	last := state.Responses[len(state.Responses)-1]
	return AnswerFeedback{
		QuestionID:      question.ID,
		Correct:         last.Correct,
		CorrectAnswerID: correctID,
		Explanation:     question.Explanation,
		FunFact:         question.FunFact,
		HintUsed:        last.HintUsed,
		TimedOut:        last.TimedOut(),
	}, snapshotOf(sessionID, state), nil
}

// UseHint generates a hint for the current question and marks the question's
// hint as consumed. Asking again for the same question returns a freshly
// generated hint without changing the recorded usage.
func (s *QuizService) UseHint(ctx context.Context, sessionID string) (hint.Hint, Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, Snapshot{}, domain.ErrSessionNotFound
	}

	current := session.State()
	question, ok := current.CurrentQuestion()
	if !ok || current.Complete {
		return nil, Snapshot{}, domain.ErrNoActiveQuestion
	}

	s.hintMu.Lock()
	h := s.hints.Generate(question)
	s.hintMu.Unlock()

	state := session.Dispatch(quiz.UseHint{QuestionID: question.ID})
	s.saveSnapshot(ctx, sessionID, state)
	return h, snapshotOf(sessionID, state), nil
}

// NextQuestion advances the run, completing it past the last question.
func (s *QuizService) NextQuestion(ctx context.Context, sessionID string) (Snapshot, error) {
	return s.dispatch(ctx, sessionID, quiz.NextQuestion{At: s.now()})
}

// Pause suspends the countdown, leaving the remaining seconds untouched.
func (s *QuizService) Pause(ctx context.Context, sessionID string) (Snapshot, error) {
	return s.dispatch(ctx, sessionID, quiz.PauseTimer{})
}

// Resume lifts a pause without resetting the countdown.
func (s *QuizService) Resume(ctx context.Context, sessionID string) (Snapshot, error) {
	return s.dispatch(ctx, sessionID, quiz.ResumeTimer{})
}

// Reset returns the session to the empty initial state.
func (s *QuizService) Reset(ctx context.Context, sessionID string) (Snapshot, error) {
	return s.dispatch(ctx, sessionID, quiz.Reset{At: s.now()})
}

// Tick advances the externally owned one-second clock. It reports whether
// this tick exhausted the timer, in which case the caller is expected to
// submit the timed-out response. Paused and completed runs ignore ticks.
func (s *QuizService) Tick(ctx context.Context, sessionID string) (Snapshot, bool, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, false, domain.ErrSessionNotFound
	}

	if state := session.State(); state.Paused || state.Complete || !state.Initialized() {
		return snapshotOf(sessionID, state), false, nil
	}

	prev, state := session.Apply(quiz.TickTimer{})
	expired := prev.TimeRemaining > 0 && state.TimeRemaining == 0
	return snapshotOf(sessionID, state), expired, nil
}

// Results recomputes the aggregate results for the session's responses.
func (s *QuizService) Results(_ context.Context, sessionID string) (ResultsView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return ResultsView{}, domain.ErrSessionNotFound
	}
	state := session.State()
	results := scoring.CalculateQuizScore(state.Responses, state.Questions)
	return ResultsView{
		Results:  results,
		MaxScore: scoring.CalculateMaxScore(state.Questions),
		Feedback: scoring.PerformanceFeedback(results.Percentage),
		Analysis: scoring.PerformanceAnalysis(results, state.Questions),
		ByTier:   scoring.ScoreByDifficulty(state.Responses, state.Questions),
	}, nil
}

// Subscribe returns a channel of snapshots for the session. The caller must
// invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context, sessionID string) (<-chan Snapshot, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// End drops the session and its persisted snapshot.
func (s *QuizService) End(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
	if err := s.snapshots.Delete(ctx, sessionID); err != nil {
		log.Printf("snapshot delete for %s failed: %v", sessionID, err)
	}
}

func (s *QuizService) dispatch(ctx context.Context, sessionID string, action quiz.Action) (Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	state := session.Dispatch(action)
	s.saveSnapshot(ctx, sessionID, state)
	return snapshotOf(sessionID, state), nil
}

// saveSnapshot mirrors state to the snapshot store. Failures degrade to
// in-memory-only behavior and never surface to the player.
func (s *QuizService) saveSnapshot(ctx context.Context, sessionID string, state quiz.State) {
	if err := s.snapshots.Save(ctx, sessionID, state); err != nil {
		log.Printf("snapshot save for %s failed: %v", sessionID, err)
	}
}

func (s *QuizService) loadSnapshot(ctx context.Context, sessionID string) (quiz.State, bool) {
	state, ok, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		log.Printf("snapshot load for %s failed: %v", sessionID, err)
		return quiz.State{}, false
	}
	return state, ok
}
