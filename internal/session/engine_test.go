package session

import (
	"testing"
	"time"
)

// fakeClock advances only when told to, and hands out fakeTickers whose
// channel the test drives by calling Engine.tick directly.
type fakeClock struct {
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) NewTicker(time.Duration) Ticker {
	t := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               { t.stopped = true }

func threeQuestions() []Question {
	return []Question{
		{ID: 1, Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{ID: 2, Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{ID: 3, Text: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
	}
}

func TestSelectOptionOnlyFirstCounts(t *testing.T) {
	e, err := New(threeQuestions())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	if err := e.SelectOption(3); err != nil {
		t.Fatal(err)
	}
	// second selection on the same question is a no-op
	if err := e.SelectOption(0); err != nil {
		t.Fatal(err)
	}
	if got := e.Answers()[0]; got != 3 {
		t.Errorf("answers[0] = %d, want 3", got)
	}

	if err := e.SelectOption(9); err != ErrOptionOutOfRange {
		t.Errorf("out-of-range select err = %v", err)
	}
}

func TestNavigationClamps(t *testing.T) {
	e, _ := New(threeQuestions())
	_ = e.Start()

	if err := e.Previous(); err != nil {
		t.Fatal(err)
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0 after Previous at start", e.Index())
	}

	_ = e.Next()
	_ = e.Next()
	if e.Index() != 2 {
		t.Errorf("index = %d, want 2", e.Index())
	}

	// Next past the last question completes the session
	_ = e.Next()
	if e.State() != StateCompleted {
		t.Errorf("state = %v, want StateCompleted", e.State())
	}
}

func TestScoreInvariant(t *testing.T) {
	clock := newFakeClock()
	e, _ := New(threeQuestions(), WithClock(clock))
	_ = e.Start()

	_ = e.SelectOption(0) // correct
	_ = e.Next()
	_ = e.SelectOption(3) // wrong
	_ = e.Next()
	// q3 skipped
	clock.advance(95 * time.Second)
	_ = e.Complete()

	score, err := e.Score()
	if err != nil {
		t.Fatal(err)
	}
	if score.Correct != 1 || score.Wrong != 1 || score.Skipped != 1 {
		t.Errorf("score = %+v", score)
	}
	if score.Correct+score.Wrong+score.Skipped != score.Total {
		t.Errorf("invariant broken: %+v", score)
	}
	if score.ElapsedSeconds != 95 {
		t.Errorf("elapsed = %d, want 95", score.ElapsedSeconds)
	}
	if score.Percentage != 33 {
		t.Errorf("percentage = %d, want 33", score.Percentage)
	}
}

func TestCountdownForceCompletesOnce(t *testing.T) {
	clock := newFakeClock()
	completions := 0
	var final Score
	e, _ := New(threeQuestions(),
		WithClock(clock),
		WithBudget(3*time.Second),
		WithOnComplete(func(s Score) {
			completions++
			final = s
		}),
	)
	_ = e.Start()
	_ = e.SelectOption(0) // q1 correct, q2/q3 never visited

	for i := 0; i < 3; i++ {
		clock.advance(time.Second)
		if done := e.tick(); done != (i == 2) {
			t.Fatalf("tick %d done = %v", i, done)
		}
	}

	if e.State() != StateCompleted {
		t.Fatalf("state = %v, want StateCompleted", e.State())
	}
	if completions != 1 {
		t.Fatalf("onComplete fired %d times, want 1", completions)
	}
	// unanswered questions count as skipped, not wrong
	if final.Correct != 1 || final.Wrong != 0 || final.Skipped != 2 {
		t.Errorf("score = %+v", final)
	}

	// a stray tick after completion must not fire anything again
	if !e.tick() {
		t.Error("tick after completion should report done")
	}
	if completions != 1 {
		t.Errorf("onComplete fired %d times after stray tick", completions)
	}
}

func TestTickerReleasedOnEveryExit(t *testing.T) {
	clock := newFakeClock()

	e, _ := New(threeQuestions(), WithClock(clock), WithBudget(time.Minute))
	_ = e.Start()
	_ = e.Complete()
	if len(clock.tickers) != 1 {
		t.Fatalf("tickers = %d, want 1", len(clock.tickers))
	}

	e2, _ := New(threeQuestions(), WithClock(clock), WithBudget(time.Minute))
	_ = e2.Start()
	e2.Stop()

	e3, _ := New(threeQuestions(), WithClock(clock), WithBudget(time.Minute))
	_ = e3.Start()
	_ = e3.Complete()
	if err := e3.Review(); err != nil {
		t.Fatal(err)
	}
	if e3.State() != StateReviewing {
		t.Errorf("state = %v, want StateReviewing", e3.State())
	}
}

func TestRestartResetsAnswersAndClock(t *testing.T) {
	clock := newFakeClock()
	e, _ := New(threeQuestions(), WithClock(clock), WithBudget(6*time.Second))
	_ = e.Start()
	_ = e.SelectOption(1)
	_ = e.Complete()

	if err := e.Restart(); err != nil {
		t.Fatal(err)
	}
	if e.State() != StateInProgress {
		t.Fatalf("state = %v, want StateInProgress", e.State())
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0", e.Index())
	}
	for i, a := range e.Answers() {
		if a != Unanswered {
			t.Errorf("answers[%d] = %d, want Unanswered", i, a)
		}
	}
	if e.RemainingSeconds() != 6 {
		t.Errorf("remaining = %d, want 6", e.RemainingSeconds())
	}
}

func TestQuizBudget(t *testing.T) {
	if got := QuizBudget(5, 60); got != 300*time.Second {
		t.Errorf("QuizBudget(5, 60) = %v, want 300s", got)
	}
}

func TestUntimedSessionHasNoTicker(t *testing.T) {
	clock := newFakeClock()
	e, _ := New(threeQuestions(), WithClock(clock))
	_ = e.Start()
	if len(clock.tickers) != 0 {
		t.Errorf("untimed session created %d tickers", len(clock.tickers))
	}
	if e.RemainingSeconds() != 0 {
		t.Errorf("remaining = %d, want 0 for untimed", e.RemainingSeconds())
	}
}
