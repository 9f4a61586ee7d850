package app

import (
	"weird-animal-quiz/internal/domain"
	"weird-animal-quiz/internal/quiz"
	"weird-animal-quiz/internal/scoring"
)

// AnswerView is an answer option with the correctness flag stripped. Clients
// only learn the correct answer through feedback after submitting.
type AnswerView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuestionView is the client-facing shape of the current question.
type QuestionView struct {
	ID         string            `json:"id"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Text       string            `json:"text"`
	Emojis     []string          `json:"emojis"`
	Answers    []AnswerView      `json:"answers"`
	Category   string            `json:"category"`
}

// Snapshot is the state frame pushed to subscribers after every transition.
type Snapshot struct {
	SessionID       string           `json:"sessionId"`
	Question        *QuestionView    `json:"question,omitempty"`
	Progress        domain.Progress  `json:"progress"`
	TimeRemaining   int              `json:"timeRemaining"`
	Warning         quiz.TimeWarning `json:"timeWarning"`
	Paused          bool             `json:"isPaused"`
	ShowingFeedback bool             `json:"showingFeedback"`
	Complete        bool             `json:"isComplete"`
	Answered        int              `json:"answered"`
	HintAvailable   bool             `json:"hintAvailable"`
}

// AnswerFeedback is returned once per submission, alongside the new snapshot.
type AnswerFeedback struct {
	QuestionID      string `json:"questionId"`
	Correct         bool   `json:"correct"`
	CorrectAnswerID string `json:"correctAnswerId"`
	Explanation     string `json:"explanation"`
	FunFact         string `json:"funFact"`
	HintUsed        bool   `json:"hintUsed"`
	TimedOut        bool   `json:"timedOut"`
}

// ResultsView is the final results screen payload.
type ResultsView struct {
	Results  domain.QuizResults                      `json:"results"`
	MaxScore int                                     `json:"maxScore"`
	Feedback scoring.Feedback                        `json:"feedback"`
	Analysis scoring.Analysis                        `json:"analysis"`
	ByTier   map[domain.Difficulty]scoring.TierScore `json:"scoreByDifficulty"`
}

func snapshotOf(sessionID string, s quiz.State) Snapshot {
	snap := Snapshot{
		SessionID:       sessionID,
		Progress:        s.Progress(),
		TimeRemaining:   s.TimeRemaining,
		Warning:         s.TimeWarningLevel(),
		Paused:          s.Paused,
		ShowingFeedback: s.ShowingFeedback,
		Complete:        s.Complete,
		Answered:        len(s.Responses),
	}
	if q, ok := s.CurrentQuestion(); ok {
		snap.Question = questionView(q)
		snap.HintAvailable = s.HintAvailable(q.ID)
	}
	return snap
}

func questionView(q domain.Question) *QuestionView {
	answers := make([]AnswerView, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, AnswerView{ID: a.ID, Text: a.Text})
	}
	return &QuestionView{
		ID:         q.ID,
		Difficulty: q.Difficulty,
		Text:       q.Text,
		Emojis:     q.Emojis,
		Answers:    answers,
		Category:   q.Category,
	}
}
