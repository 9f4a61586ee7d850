package quiz

import (
	"time"

	"weird-animal-quiz/internal/domain"
)

// Action is the sealed set of state transitions. Time-dependent actions carry
// their timestamp so the reducer never reads the clock.
type Action interface {
	isAction()
}

// Initialize replaces the whole state with a fresh one seeded with the given
// questions. The machine stays paused until StartTimer.
type Initialize struct {
	Questions []domain.Question
	At        time.Time
}

// StartTimer resets the countdown to the full per-question budget and resumes ticking.
type StartTimer struct{}

// ResumeTimer resumes ticking without touching the countdown.
type ResumeTimer struct{}

// PauseTimer suspends ticking without touching the countdown.
type PauseTimer struct{}

// UpdateTimer records the externally driven countdown value, clamped to zero.
// The machine does not own the clock; the caller decrements once per second
// while unpaused.
type UpdateTimer struct {
	Seconds int
}

// TickTimer decrements the countdown by one second inside the reducer, so
// concurrent tick sources cannot double-decrement. No-op while paused,
// complete, uninitialized, or already at zero.
type TickTimer struct{}

// SubmitAnswer records a response for the current question and enters the
// feedback pause. A second submission before NextQuestion appends another
// response; there is no per-question guard.
type SubmitAnswer struct {
	AnswerID  string
	TimeSpent int
	At        time.Time
}

// ShowFeedback redisplays the feedback panel without resubmitting.
type ShowFeedback struct{}

// HideFeedback dismisses the feedback panel.
type HideFeedback struct{}

// NextQuestion advances to the next question, or completes the quiz when the
// bank is exhausted.
type NextQuestion struct {
	At time.Time
}

// UseHint marks a hint as consumed for the question. Idempotent per question.
type UseHint struct {
	QuestionID string
}

// CompleteQuiz forces the terminal state, used for abnormal termination.
type CompleteQuiz struct {
	At time.Time
}

// Reset returns to the initial empty state with a fresh start timestamp.
type Reset struct {
	At time.Time
}

func (Initialize) isAction()   {}
func (StartTimer) isAction()   {}
func (ResumeTimer) isAction()  {}
func (PauseTimer) isAction()   {}
func (UpdateTimer) isAction()  {}
func (TickTimer) isAction()    {}
func (SubmitAnswer) isAction() {}
func (ShowFeedback) isAction() {}
func (HideFeedback) isAction() {}
func (NextQuestion) isAction() {}
func (UseHint) isAction()      {}
func (CompleteQuiz) isAction() {}
func (Reset) isAction()        {}
