package quiz

import (
	"testing"
	"time"

	"weird-animal-quiz/internal/domain"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func twoQuestionState() State {
	return Reduce(NewState(), Initialize{Questions: twoQuestions(), At: t0})
}

func twoQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:         "q1",
			Difficulty: domain.Easy,
			Text:       "How many hours a day do koalas sleep?",
			Answers: []domain.Answer{
				{ID: "q1a", Text: "8", Correct: false},
				{ID: "q1b", Text: "22", Correct: true},
			},
		},
		{
			ID:         "q2",
			Difficulty: domain.Medium,
			Text:       "How fast can a peregrine falcon dive?",
			Answers: []domain.Answer{
				{ID: "q2a", Text: "240 mph", Correct: true},
				{ID: "q2b", Text: "60 mph", Correct: false},
				{ID: "q2c", Text: "120 mph", Correct: false},
			},
		},
	}
}

func TestInitializeResetsEverything(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, StartTimer{})
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 5, At: t0})
	s = Reduce(s, UseHint{QuestionID: "q1"})

	s = Reduce(s, Initialize{Questions: twoQuestions(), At: t0.Add(time.Minute)})
	if s.CurrentIndex != 0 || len(s.Responses) != 0 || len(s.HintsUsed) != 0 {
		t.Fatalf("expected fresh state, got %+v", s)
	}
	if s.TimeRemaining != QuestionSeconds {
		t.Fatalf("expected full timer, got %d", s.TimeRemaining)
	}
	if !s.Paused {
		t.Fatalf("expected machine paused until StartTimer")
	}
	if s.Complete {
		t.Fatalf("expected incomplete quiz")
	}
}

func TestIndexIsMonotonic(t *testing.T) {
	s := twoQuestionState()
	last := s.CurrentIndex
	for i := 0; i < 5; i++ {
		s = Reduce(s, NextQuestion{At: t0})
		if s.CurrentIndex < last {
			t.Fatalf("index decreased from %d to %d", last, s.CurrentIndex)
		}
		last = s.CurrentIndex
	}
	if s.CurrentIndex > len(s.Questions) {
		t.Fatalf("index %d advanced past bank of %d", s.CurrentIndex, len(s.Questions))
	}
}

func TestTerminalStateIsStable(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, CompleteQuiz{At: t0})
	if !s.Complete {
		t.Fatalf("expected complete")
	}

	frozen := s
	for _, a := range []Action{
		SubmitAnswer{AnswerID: "q1b", TimeSpent: 3, At: t0},
		UseHint{QuestionID: "q1"},
		UpdateTimer{Seconds: 7},
		NextQuestion{At: t0},
		CompleteQuiz{At: t0.Add(time.Hour)},
	} {
		s = Reduce(s, a)
	}
	if s.Complete != frozen.Complete || s.CurrentIndex != frozen.CurrentIndex {
		t.Fatalf("terminal state moved: %+v", s)
	}
	if len(s.Responses) != len(frozen.Responses) {
		t.Fatalf("responses changed after completion")
	}
	if !s.EndedAt.Equal(frozen.EndedAt) {
		t.Fatalf("end timestamp rewritten after completion")
	}
}

func TestHintUseIsIdempotent(t *testing.T) {
	s := twoQuestionState()
	once := Reduce(s, UseHint{QuestionID: "q1"})
	twice := Reduce(once, UseHint{QuestionID: "q1"})
	if len(twice.HintsUsed) != 1 || !twice.HintsUsed["q1"] {
		t.Fatalf("expected exactly one hint mark, got %v", twice.HintsUsed)
	}
	if once.HintAvailable("q1") {
		t.Fatalf("hint should be unavailable after use")
	}
	if !once.HintAvailable("q2") {
		t.Fatalf("hint for q2 should remain available")
	}
}

func TestUpdateTimerClampsNegative(t *testing.T) {
	s := twoQuestionState()
	for _, n := range []int{-1, -100, 0, 12} {
		got := Reduce(s, UpdateTimer{Seconds: n}).TimeRemaining
		want := n
		if want < 0 {
			want = 0
		}
		if got != want {
			t.Fatalf("UpdateTimer(%d): got %d, want %d", n, got, want)
		}
	}
}

func TestTickTimerDecrementsInsideReducer(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, StartTimer{})

	s = Reduce(s, TickTimer{})
	if s.TimeRemaining != QuestionSeconds-1 {
		t.Fatalf("expected one-second decrement, got %d", s.TimeRemaining)
	}

	s = Reduce(s, UpdateTimer{Seconds: 0})
	s = Reduce(s, TickTimer{})
	if s.TimeRemaining != 0 {
		t.Fatalf("tick at zero must not go negative, got %d", s.TimeRemaining)
	}

	s = Reduce(s, UpdateTimer{Seconds: 10})
	s = Reduce(s, PauseTimer{})
	if got := Reduce(s, TickTimer{}).TimeRemaining; got != 10 {
		t.Fatalf("paused tick moved the timer to %d", got)
	}

	if got := Reduce(NewState(), TickTimer{}).TimeRemaining; got != QuestionSeconds {
		t.Fatalf("uninitialized tick moved the timer to %d", got)
	}
}

func TestSubmitAnswerRecordsResponse(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, StartTimer{})
	s = Reduce(s, UseHint{QuestionID: "q1"})
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 10, At: t0})

	if len(s.Responses) != 1 {
		t.Fatalf("expected one response, got %d", len(s.Responses))
	}
	r := s.Responses[0]
	if !r.Correct || r.QuestionID != "q1" || !r.HintUsed || r.TimeSpent != 10 {
		t.Fatalf("unexpected response %+v", r)
	}
	if !s.Paused || !s.ShowingFeedback {
		t.Fatalf("expected paused feedback state, got paused=%v feedback=%v", s.Paused, s.ShowingFeedback)
	}
}

// A second submission before NextQuestion appends a second response. This is
// the observed product behavior; the test pins it so a change is deliberate.
func TestDuplicateSubmissionAppends(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: "q1a", TimeSpent: 4, At: t0})
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 6, At: t0})
	if len(s.Responses) != 2 {
		t.Fatalf("expected two responses, got %d", len(s.Responses))
	}
}

func TestSubmitAnswerOutOfRangeIsNoop(t *testing.T) {
	s := NewState()
	s = Reduce(s, SubmitAnswer{AnswerID: "anything", TimeSpent: 1, At: t0})
	if len(s.Responses) != 0 {
		t.Fatalf("expected no response on empty state")
	}
}

func TestTimedOutSentinelScoresIncorrect(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: domain.TimedOutAnswerID, TimeSpent: QuestionSeconds, At: t0})
	if s.Responses[0].Correct {
		t.Fatalf("timed-out response must be incorrect")
	}
	if !s.Responses[0].TimedOut() {
		t.Fatalf("expected timed-out marker")
	}
}

func TestNextQuestionAdvancesAndCompletes(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 10, At: t0})
	s = Reduce(s, NextQuestion{At: t0})
	if s.CurrentIndex != 1 || s.Paused || s.ShowingFeedback {
		t.Fatalf("expected ticking second question, got %+v", s)
	}
	if s.TimeRemaining != QuestionSeconds {
		t.Fatalf("expected timer reset, got %d", s.TimeRemaining)
	}

	s = Reduce(s, SubmitAnswer{AnswerID: "q2a", TimeSpent: 20, At: t0})
	s = Reduce(s, NextQuestion{At: t0.Add(time.Minute)})
	if !s.Complete {
		t.Fatalf("expected completion past last question")
	}
	if len(s.Responses) != 2 {
		t.Fatalf("expected two responses, got %d", len(s.Responses))
	}
	if s.EndedAt.IsZero() {
		t.Fatalf("expected end timestamp")
	}
}

func TestFeedbackTogglesWithoutResubmitting(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 5, At: t0})

	s = Reduce(s, HideFeedback{})
	if s.ShowingFeedback {
		t.Fatalf("expected feedback hidden")
	}
	s = Reduce(s, ShowFeedback{})
	if !s.ShowingFeedback {
		t.Fatalf("expected feedback redisplayed")
	}
	if len(s.Responses) != 1 {
		t.Fatalf("feedback toggles must not touch responses, got %d", len(s.Responses))
	}
}

func TestPauseResumeDoNotTouchTimer(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, StartTimer{})
	s = Reduce(s, UpdateTimer{Seconds: 17})
	s = Reduce(s, PauseTimer{})
	if !s.Paused || s.TimeRemaining != 17 {
		t.Fatalf("pause changed timer: %+v", s)
	}
	s = Reduce(s, ResumeTimer{})
	if s.Paused || s.TimeRemaining != 17 {
		t.Fatalf("resume changed timer: %+v", s)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 2, At: t0})
	before := len(s.Responses)

	_ = Reduce(s, SubmitAnswer{AnswerID: "q1a", TimeSpent: 3, At: t0})
	_ = Reduce(s, UseHint{QuestionID: "q2"})

	if len(s.Responses) != before {
		t.Fatalf("input responses mutated")
	}
	if s.HintsUsed["q2"] {
		t.Fatalf("input hints mutated")
	}
}

func TestTimeWarningLevels(t *testing.T) {
	cases := []struct {
		remaining int
		want      TimeWarning
	}{
		{30, WarnNormal}, {11, WarnNormal}, {10, WarnSoon}, {6, WarnSoon}, {5, WarnDanger}, {0, WarnDanger},
	}
	for _, c := range cases {
		s := State{TimeRemaining: c.remaining}
		if got := s.TimeWarningLevel(); got != c.want {
			t.Fatalf("remaining=%d: got %s, want %s", c.remaining, got, c.want)
		}
	}
}

func TestProgress(t *testing.T) {
	s := twoQuestionState()
	p := s.Progress()
	if p.Current != 1 || p.Total != 2 || p.Percentage != 50 {
		t.Fatalf("unexpected progress %+v", p)
	}
	s = Reduce(s, NextQuestion{At: t0})
	p = s.Progress()
	if p.Current != 2 || p.Percentage != 100 {
		t.Fatalf("unexpected progress %+v", p)
	}
	if got := NewState().Progress(); got != (domain.Progress{}) {
		t.Fatalf("expected zero progress on empty state, got %+v", got)
	}
}

func TestResetReturnsToEmptyState(t *testing.T) {
	s := twoQuestionState()
	s = Reduce(s, SubmitAnswer{AnswerID: "q1b", TimeSpent: 1, At: t0})
	s = Reduce(s, Reset{At: t0.Add(time.Hour)})
	if s.Initialized() || len(s.Responses) != 0 || s.Complete {
		t.Fatalf("expected empty state, got %+v", s)
	}
	if !s.StartedAt.Equal(t0.Add(time.Hour)) {
		t.Fatalf("expected fresh start timestamp")
	}
}
