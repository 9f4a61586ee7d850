// Package scoring turns a recorded response set into aggregate results and
// derived feedback. Everything here is pure arithmetic over the response and
// question lists.
package scoring

import (
	"math"

	"weird-animal-quiz/internal/domain"
	"weird-animal-quiz/internal/quiz"
)

// BasePoints is the per-difficulty score of a correct answer before modifiers.
var BasePoints = map[domain.Difficulty]int{
	domain.Easy:   10,
	domain.Medium: 20,
	domain.Hard:   30,
}

const (
	// HintPenalty halves the score of a question answered with a hint.
	HintPenalty = 0.5
	// Fast answers earn a bonus: 20% with 20+ seconds left, 10% with 10+.
	fastBonus      = 1.2
	fastThreshold  = 20
	quickBonus     = 1.1
	quickThreshold = 10
)

// CalculateQuizScore aggregates responses against the question bank. Time and
// hint totals accumulate for every response, even ones referencing unknown
// questions; correctness and difficulty accounting only cover known questions.
func CalculateQuizScore(responses []domain.UserResponse, questions []domain.Question) domain.QuizResults {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	results := domain.QuizResults{
		TotalQuestions: len(responses),
		Breakdown:      emptyBreakdown(),
	}

	for _, r := range responses {
		results.TimeSpent += r.TimeSpent
		if r.HintUsed {
			results.HintsUsed++
		}

		q, known := byID[r.QuestionID]
		if !known {
			continue
		}

		tier := results.Breakdown[q.Difficulty]
		tier.Total++
		if r.Correct {
			tier.Correct++
			results.CorrectAnswers++
			results.TotalScore += questionScore(q.Difficulty, r.TimeSpent, r.HintUsed)
		}
		results.Breakdown[q.Difficulty] = tier
	}

	for d, tier := range results.Breakdown {
		tier.Percentage = roundPercent(tier.Correct, tier.Total)
		results.Breakdown[d] = tier
	}
	results.Percentage = roundPercent(results.CorrectAnswers, len(responses))
	return results
}

// questionScore applies the hint penalty and time bonus to the base points.
func questionScore(d domain.Difficulty, timeSpent int, hintUsed bool) int {
	score := float64(BasePoints[d])
	if hintUsed {
		score *= HintPenalty
	}
	remaining := quiz.QuestionSeconds - timeSpent
	switch {
	case remaining >= fastThreshold:
		score *= fastBonus
	case remaining >= quickThreshold:
		score *= quickBonus
	}
	return int(math.Round(score))
}

// CalculateMaxScore sums the best case for every question: full time bonus,
// no hint penalty.
func CalculateMaxScore(questions []domain.Question) int {
	total := 0
	for _, q := range questions {
		total += int(math.Round(float64(BasePoints[q.Difficulty]) * fastBonus))
	}
	return total
}

// TierScore compares actual against attainable points within a difficulty.
type TierScore struct {
	Actual int `json:"actual"`
	Max    int `json:"max"`
}

// ScoreByDifficulty reports actual versus maximum points per tier.
func ScoreByDifficulty(responses []domain.UserResponse, questions []domain.Question) map[domain.Difficulty]TierScore {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	scores := make(map[domain.Difficulty]TierScore, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		scores[d] = TierScore{}
	}
	for _, q := range questions {
		tier := scores[q.Difficulty]
		tier.Max += int(math.Round(float64(BasePoints[q.Difficulty]) * fastBonus))
		scores[q.Difficulty] = tier
	}
	for _, r := range responses {
		q, known := byID[r.QuestionID]
		if !known || !r.Correct {
			continue
		}
		tier := scores[q.Difficulty]
		tier.Actual += questionScore(q.Difficulty, r.TimeSpent, r.HintUsed)
		scores[q.Difficulty] = tier
	}
	return scores
}

func emptyBreakdown() map[domain.Difficulty]domain.DifficultyScore {
	b := make(map[domain.Difficulty]domain.DifficultyScore, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		b[d] = domain.DifficultyScore{}
	}
	return b
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
