package domain

import "fmt"

// ValidateBank checks the structural contract of a question bank: at least one
// question, globally unique question IDs, 2-4 answers per question with unique
// IDs, and exactly one correct answer each.
func ValidateBank(bank QuestionBank) error {
	if len(bank.Questions) == 0 {
		return fmt.Errorf("%w: bank %q has no questions", ErrInvalidBank, bank.ID)
	}
	seen := make(map[string]struct{}, len(bank.Questions))
	for _, q := range bank.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question with empty id", ErrInvalidBank)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidBank, q.ID)
		}
		seen[q.ID] = struct{}{}

		if len(q.Answers) < 2 || len(q.Answers) > 4 {
			return fmt.Errorf("%w: question %q has %d answers, want 2-4", ErrInvalidBank, q.ID, len(q.Answers))
		}
		answerIDs := make(map[string]struct{}, len(q.Answers))
		correct := 0
		for _, a := range q.Answers {
			if a.ID == TimedOutAnswerID {
				return fmt.Errorf("%w: question %q uses reserved answer id %q", ErrInvalidBank, q.ID, TimedOutAnswerID)
			}
			if _, dup := answerIDs[a.ID]; dup {
				return fmt.Errorf("%w: question %q has duplicate answer id %q", ErrInvalidBank, q.ID, a.ID)
			}
			answerIDs[a.ID] = struct{}{}
			if a.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("%w: question %q has %d correct answers, want exactly 1", ErrInvalidBank, q.ID, correct)
		}
	}
	return nil
}
