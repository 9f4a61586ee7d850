package scoring

import (
	"fmt"

	"weird-animal-quiz/internal/domain"
)

// Feedback is the overall performance tier shown on the results screen.
type Feedback struct {
	Tier    string `json:"tier"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// PerformanceFeedback maps an overall percentage to one of four fixed tiers.
func PerformanceFeedback(percentage int) Feedback {
	switch {
	case percentage >= 90:
		return Feedback{Tier: "excellent", Label: "Animal Expert!", Message: "Outstanding! You really know your weird animals."}
	case percentage >= 75:
		return Feedback{Tier: "good", Label: "Wildlife Whiz", Message: "Great job! A few more safaris and you'll be unbeatable."}
	case percentage >= 60:
		return Feedback{Tier: "average", Label: "Curious Explorer", Message: "Not bad! The animal kingdom still has surprises for you."}
	default:
		return Feedback{Tier: "needs-improvement", Label: "Zoo Visitor", Message: "Keep exploring - weird animals take some getting used to."}
	}
}

// gradeCutoffs is ordered highest first; the first cutoff at or below the
// percentage wins. Anything under 55 is an F.
var gradeCutoffs = []struct {
	min   int
	grade string
}{
	{90, "A+"},
	{85, "A"},
	{80, "B+"},
	{75, "B"},
	{70, "C+"},
	{65, "C"},
	{60, "D"},
	{55, "D-"},
}

// LetterGrade converts an overall percentage to a report-card grade.
func LetterGrade(percentage int) string {
	for _, c := range gradeCutoffs {
		if percentage >= c.min {
			return c.grade
		}
	}
	return "F"
}

// Analysis is the qualitative results summary: what went well, what to work
// on, and what to try next.
type Analysis struct {
	Grade           string   `json:"grade"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

// PerformanceAnalysis derives strengths, improvements, and recommendations
// from the results by simple threshold comparison.
func PerformanceAnalysis(results domain.QuizResults, questions []domain.Question) Analysis {
	a := Analysis{Grade: LetterGrade(results.Percentage)}

	for _, d := range domain.Difficulties {
		tier := results.Breakdown[d]
		if tier.Total == 0 {
			continue
		}
		switch {
		case tier.Percentage >= 80:
			a.Strengths = append(a.Strengths, fmt.Sprintf("Strong on %s questions (%d%%).", d, tier.Percentage))
		case tier.Percentage < 50:
			a.Improvements = append(a.Improvements, fmt.Sprintf("Struggled with %s questions (%d%%).", d, tier.Percentage))
			a.Recommendations = append(a.Recommendations, fmt.Sprintf("Revisit the fun facts on %s questions before the next round.", d))
		}
	}

	if results.TotalQuestions > 0 {
		avg := results.TimeSpent / results.TotalQuestions
		if avg <= 10 {
			a.Strengths = append(a.Strengths, "Quick on the buzzer - fast answers earned time bonuses.")
		} else if avg >= 25 {
			a.Improvements = append(a.Improvements, "Answers came close to the time limit.")
			a.Recommendations = append(a.Recommendations, "Trust your first instinct; lingering costs the time bonus.")
		}
		if results.HintsUsed > results.TotalQuestions/2 {
			a.Improvements = append(a.Improvements, "Leaned on hints for most questions.")
			a.Recommendations = append(a.Recommendations, "Try a round without hints - correct answers score double.")
		}
	}

	if len(a.Recommendations) == 0 {
		a.Recommendations = append(a.Recommendations, "Take on a harder bank to keep the streak going.")
	}
	return a
}
