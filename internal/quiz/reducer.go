package quiz

import (
	"time"

	"weird-animal-quiz/internal/domain"
)

// NewState returns the empty, uninitialized state.
func NewState() State {
	return State{
		TimeRemaining: QuestionSeconds,
		HintsUsed:     map[string]bool{},
		Paused:        true,
	}
}

// Reduce applies an action to a state and returns the resulting state. It is
// pure and total: unrecognized or invalid actions return the state unchanged,
// and the inputs are never mutated.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case Initialize:
		next := NewState()
		next.Questions = a.Questions
		next.StartedAt = a.At
		return next

	case StartTimer:
		s.TimeRemaining = QuestionSeconds
		s.Paused = false
		return s

	case ResumeTimer:
		s.Paused = false
		return s

	case PauseTimer:
		s.Paused = true
		return s

	case UpdateTimer:
		if s.Complete {
			return s
		}
		if a.Seconds < 0 {
			s.TimeRemaining = 0
		} else {
			s.TimeRemaining = a.Seconds
		}
		return s

	case TickTimer:
		if !s.Initialized() || s.Complete || s.Paused || s.TimeRemaining == 0 {
			return s
		}
		s.TimeRemaining--
		return s

	case SubmitAnswer:
		question, ok := s.CurrentQuestion()
		if !ok || s.Complete {
			return s
		}
		correct := false
		if want, found := question.CorrectAnswer(); found {
			correct = want.ID == a.AnswerID
		}
		s.Responses = appendResponse(s.Responses, domain.UserResponse{
			QuestionID:       question.ID,
			SelectedAnswerID: a.AnswerID,
			Correct:          correct,
			TimeSpent:        a.TimeSpent,
			HintUsed:         s.HintsUsed[question.ID],
			Timestamp:        a.At,
		})
		s.Paused = true
		s.ShowingFeedback = true
		return s

	case ShowFeedback:
		s.ShowingFeedback = true
		return s

	case HideFeedback:
		s.ShowingFeedback = false
		return s

	case NextQuestion:
		if s.Complete {
			return s
		}
		s.CurrentIndex++
		if s.CurrentIndex >= len(s.Questions) {
			return complete(s, a.At)
		}
		s.TimeRemaining = QuestionSeconds
		s.Paused = false
		s.ShowingFeedback = false
		return s

	case UseHint:
		if s.Complete || s.HintsUsed[a.QuestionID] {
			return s
		}
		hints := make(map[string]bool, len(s.HintsUsed)+1)
		for id := range s.HintsUsed {
			hints[id] = true
		}
		hints[a.QuestionID] = true
		s.HintsUsed = hints
		return s

	case CompleteQuiz:
		if s.Complete {
			return s
		}
		return complete(s, a.At)

	case Reset:
		next := NewState()
		next.StartedAt = a.At
		return next

	default:
		return s
	}
}

func complete(s State, at time.Time) State {
	s.Complete = true
	s.EndedAt = at
	s.Paused = true
	s.ShowingFeedback = false
	return s
}

// appendResponse copies before appending so earlier state values stay intact.
func appendResponse(responses []domain.UserResponse, r domain.UserResponse) []domain.UserResponse {
	next := make([]domain.UserResponse, len(responses), len(responses)+1)
	copy(next, responses)
	return append(next, r)
}
