// Package hint generates one-shot hints for quiz questions: either the
// elimination of a wrong answer or a textual clue derived from the question.
package hint

import (
	"math/rand"
	"strings"

	"weird-animal-quiz/internal/domain"
)

// Hint is the sealed set of hint variants.
type Hint interface {
	isHint()
}

// EliminateWrongAnswer removes one incorrect option from play.
type EliminateWrongAnswer struct {
	AnswerID string `json:"eliminatedAnswerId"`
	Message  string `json:"message"`
}

// ProvideClue offers descriptive text without touching the options.
type ProvideClue struct {
	Clue    string `json:"clue"`
	Message string `json:"message"`
}

func (EliminateWrongAnswer) isHint() {}
func (ProvideClue) isHint()          {}

// Generator produces hints from an injected random source, so output is
// deterministic under a seeded source in tests.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate draws a 50/50 choice between eliminating a wrong answer and
// providing a clue. Questions without a wrong answer always get a clue.
func (g *Generator) Generate(q domain.Question) Hint {
	if g.rnd.Intn(2) == 0 {
		if h, ok := g.eliminate(q); ok {
			return h
		}
	}
	return g.clue(q)
}

func (g *Generator) eliminate(q domain.Question) (Hint, bool) {
	wrong := make([]domain.Answer, 0, len(q.Answers))
	for _, a := range q.Answers {
		if !a.Correct {
			wrong = append(wrong, a)
		}
	}
	if len(wrong) == 0 {
		return nil, false
	}
	pick := wrong[g.rnd.Intn(len(wrong))]
	return EliminateWrongAnswer{
		AnswerID: pick.ID,
		Message:  "One wrong answer has been crossed out for you.",
	}, true
}

// clueRule maps keywords in the question text (or a category) to clue text.
// Rules are checked in order; the first match wins.
type clueRule struct {
	keywords []string
	category string
	clue     string
}

var clueRules = []clueRule{
	{keywords: []string{"sleep", "hours"}, clue: "Think about how much of the day this animal spends dozing - it is more than you would guess."},
	{keywords: []string{"speed", "fast", "mph"}, clue: "Consider how this animal moves and what record it might hold."},
	{keywords: []string{"heart", "beats"}, clue: "Body size and heart rate are closely linked in the animal kingdom."},
	{category: "behavior", clue: "Picture what this animal does all day - the answer is about its habits."},
}

const fallbackClue = "The strangest-sounding answer is often the true one with weird animals."

func (g *Generator) clue(q domain.Question) Hint {
	text := strings.ToLower(q.Text)
	category := strings.ToLower(q.Category)
	for _, rule := range clueRules {
		if rule.category != "" && rule.category == category {
			return ProvideClue{Clue: rule.clue, Message: "Here is a clue."}
		}
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return ProvideClue{Clue: rule.clue, Message: "Here is a clue."}
			}
		}
	}
	return ProvideClue{Clue: fallbackClue, Message: "Here is a clue."}
}

// Validate checks structural well-formedness of a hint against its question:
// an elimination must target an existing wrong answer, a clue must carry text,
// and both must carry a message. Callers use this defensively; the generator
// never produces an invalid hint.
func Validate(h Hint, q domain.Question) bool {
	switch v := h.(type) {
	case EliminateWrongAnswer:
		if v.Message == "" {
			return false
		}
		for _, a := range q.Answers {
			if a.ID == v.AnswerID {
				return !a.Correct
			}
		}
		return false
	case ProvideClue:
		return v.Clue != "" && v.Message != ""
	default:
		return false
	}
}
