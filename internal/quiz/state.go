package quiz

import (
	"time"

	"weird-animal-quiz/internal/domain"
)

// QuestionSeconds is the fixed per-question countdown budget.
const QuestionSeconds = 30

// State is the canonical quiz state. It is owned by a single store and only
// ever changes by passing through Reduce; the struct itself is plain data and
// safe to copy, snapshot, and serialize.
type State struct {
	Questions       []domain.Question     `json:"questions"`
	CurrentIndex    int                   `json:"currentQuestionIndex"`
	Responses       []domain.UserResponse `json:"userAnswers"`
	TimeRemaining   int                   `json:"timeRemaining"`
	HintsUsed       map[string]bool       `json:"hintsUsed"`
	StartedAt       time.Time             `json:"quizStartTime"`
	EndedAt         time.Time             `json:"quizEndTime"`
	Complete        bool                  `json:"isComplete"`
	Paused          bool                  `json:"isPaused"`
	ShowingFeedback bool                  `json:"showingFeedback"`
}

// Initialized reports whether a question bank has been loaded.
func (s State) Initialized() bool {
	return len(s.Questions) > 0
}

// CurrentQuestion returns the question at the current index, or false when the
// index is out of range or no bank is loaded.
func (s State) CurrentQuestion() (domain.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return domain.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Progress reports the 1-based position within the bank.
func (s State) Progress() domain.Progress {
	total := len(s.Questions)
	if total == 0 {
		return domain.Progress{}
	}
	current := s.CurrentIndex + 1
	if current > total {
		current = total
	}
	return domain.Progress{
		Current:    current,
		Total:      total,
		Percentage: roundPercent(current, total),
	}
}

// HintAvailable reports whether a hint may still be used for the question.
func (s State) HintAvailable(questionID string) bool {
	return !s.HintsUsed[questionID]
}

// TimeWarning classifies the remaining seconds for the presentation layer.
type TimeWarning string

const (
	WarnNormal TimeWarning = "normal"
	WarnSoon   TimeWarning = "warning"
	WarnDanger TimeWarning = "danger"
)

// TimeWarningLevel returns danger at five seconds or less, warning at ten or
// less, and normal otherwise.
func (s State) TimeWarningLevel() TimeWarning {
	switch {
	case s.TimeRemaining <= 5:
		return WarnDanger
	case s.TimeRemaining <= 10:
		return WarnSoon
	default:
		return WarnNormal
	}
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return (100*part + whole/2) / whole
}
