package domain

import "time"

// Difficulty classifies a question and drives its base point value.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order of base points.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Answer represents one selectable option of a question.
type Answer struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question models a multiple-choice animal-fact question with exactly one correct answer.
type Question struct {
	ID          string     `json:"id"`
	Difficulty  Difficulty `json:"difficulty"`
	Text        string     `json:"text"`
	Emojis      []string   `json:"emojis"`
	Answers     []Answer   `json:"answers"` // 2 to 4 options
	Explanation string     `json:"explanation"`
	FunFact     string     `json:"funFact"`
	Category    string     `json:"category"`
}

// CorrectAnswer returns the answer flagged correct, if any.
func (q Question) CorrectAnswer() (Answer, bool) {
	for _, a := range q.Answers {
		if a.Correct {
			return a, true
		}
	}
	return Answer{}, false
}

// QuestionBank is the fixed ordered collection of questions loaded at quiz start.
type QuestionBank struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// TimedOutAnswerID is the reserved selectedAnswerId recorded when a question times out.
// It never matches a real answer, so a timed-out response always scores as incorrect.
const TimedOutAnswerID = "timed-out"

// UserResponse records one answered (or timed-out) question. Responses are
// append-only; they are never mutated or removed once recorded.
type UserResponse struct {
	QuestionID       string    `json:"questionId"`
	SelectedAnswerID string    `json:"selectedAnswerId"`
	Correct          bool      `json:"correct"`
	TimeSpent        int       `json:"timeSpent"` // seconds
	HintUsed         bool      `json:"hintUsed"`
	Timestamp        time.Time `json:"timestamp"`
}

// TimedOut reports whether the response was recorded by the timeout path.
func (r UserResponse) TimedOut() bool {
	return r.SelectedAnswerID == TimedOutAnswerID
}

// DifficultyScore is the per-tier slice of a results breakdown.
type DifficultyScore struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// QuizResults aggregates a finished (or in-flight) set of responses. It is
// derived on demand from responses plus the bank and never stored.
type QuizResults struct {
	TotalScore     int                            `json:"totalScore"`
	Percentage     int                            `json:"percentage"`
	CorrectAnswers int                            `json:"correctAnswers"`
	TotalQuestions int                            `json:"totalQuestions"`
	TimeSpent      int                            `json:"timeSpent"`
	HintsUsed      int                            `json:"hintsUsed"`
	Breakdown      map[Difficulty]DifficultyScore `json:"difficultyBreakdown"`
}

// Progress is the position indicator shown alongside a question.
type Progress struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
