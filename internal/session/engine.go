// Package session drives one participant through one assessment: question
// position, one answer per question, the countdown clock, and the final
// score. It is the in-process state machine behind both timed exams and
// self-paced practice.
package session

import (
	"errors"
	"math"
	"sync"
	"time"
)

// State of a running session.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateCompleted
	StateReviewing
)

// Unanswered marks a question the participant never answered. Unanswered
// questions score as skipped, never as wrong.
const Unanswered = -1

var (
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrNotCompleted     = errors.New("session is not completed")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrNoQuestions      = errors.New("session has no questions")
	ErrAlreadyStarted   = errors.New("session already started")
)

// Question is the engine's read-only view of one assessment question.
type Question struct {
	ID           uint
	Text         string
	Options      []string
	CorrectIndex int
	Hint         *string
}

// Score is computed deterministically from the answers array at completion.
// Correct+Wrong+Skipped always equals Total.
type Score struct {
	Total          int
	Correct        int
	Wrong          int
	Skipped        int
	ElapsedSeconds int
	Percentage     int // rounded
}

// Engine is safe for concurrent use; every mutation, including timer ticks,
// is serialized through one mutex.
type Engine struct {
	mu        sync.Mutex
	clock     Clock
	questions []Question
	answers   []int
	index     int
	state     State

	budget     time.Duration // zero means untimed
	remaining  int           // seconds, meaningful only while timed and in progress
	startedAt  time.Time
	finishedAt time.Time

	stopTicker func() // releases the tick goroutine; nil when no timer is running

	onComplete func(Score) // fired exactly once, outside the lock
}

// Option configures an Engine.
type Option func(*Engine)

// WithBudget sets the total countdown budget. Zero disables the timer
// (practice replay).
func WithBudget(d time.Duration) Option {
	return func(e *Engine) { e.budget = d }
}

// WithClock substitutes the time source.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithOnComplete registers a callback fired exactly once when the session
// completes, whether by walking past the last question or by the clock
// running out.
func WithOnComplete(fn func(Score)) Option {
	return func(e *Engine) { e.onComplete = fn }
}

// QuizBudget is the default practice-quiz time budget: a per-question
// allowance times the question count.
func QuizBudget(questionCount, secondsPerQuestion int) time.Duration {
	return time.Duration(questionCount*secondsPerQuestion) * time.Second
}

func New(questions []Question, opts ...Option) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	e := &Engine{
		clock:     realClock{},
		questions: questions,
		answers:   make([]int, len(questions)),
		state:     StateIdle,
	}
	for i := range e.answers {
		e.answers[i] = Unanswered
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start moves Idle to InProgress and, when a budget is set, acquires the
// countdown ticker. The ticker is released on every exit transition.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return ErrAlreadyStarted
	}
	e.state = StateInProgress
	e.index = 0
	e.startedAt = e.clock.Now()
	if e.budget > 0 {
		e.remaining = int(e.budget / time.Second)
		e.runTicker()
	}
	e.mu.Unlock()
	return nil
}

// runTicker spawns the tick loop. Caller holds the lock.
func (e *Engine) runTicker() {
	t := e.clock.NewTicker(time.Second)
	done := make(chan struct{})
	var once sync.Once
	e.stopTicker = func() {
		once.Do(func() { close(done) })
	}
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C():
				if e.tick() {
					return
				}
			}
		}
	}()
}

// tick consumes one second of budget. Returns true when the loop should
// exit, either because time ran out or the session moved on without it.
func (e *Engine) tick() bool {
	e.mu.Lock()
	if e.state != StateInProgress {
		e.mu.Unlock()
		return true
	}
	e.remaining--
	if e.remaining > 0 {
		e.mu.Unlock()
		return false
	}
	e.remaining = 0
	fire := e.completeLocked()
	e.mu.Unlock()
	fire()
	return true
}

// completeLocked transitions to Completed, releases the ticker, and returns
// the deferred onComplete invocation. Caller holds the lock and must call
// the returned func after unlocking.
func (e *Engine) completeLocked() func() {
	e.state = StateCompleted
	e.finishedAt = e.clock.Now()
	e.releaseTickerLocked()
	if e.onComplete == nil {
		return func() {}
	}
	fn := e.onComplete
	e.onComplete = nil // exactly once
	score := e.scoreLocked()
	return func() { fn(score) }
}

func (e *Engine) releaseTickerLocked() {
	if e.stopTicker != nil {
		e.stopTicker()
		e.stopTicker = nil
	}
}

// SelectOption records the answer for the current question. Only the first
// selection per question counts; repeats are no-ops, not errors.
func (e *Engine) SelectOption(option int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	if option < 0 || option >= len(e.questions[e.index].Options) {
		return ErrOptionOutOfRange
	}
	if e.answers[e.index] != Unanswered {
		return nil
	}
	e.answers[e.index] = option
	return nil
}

// Next advances within the question list; past the last question it
// completes the session.
func (e *Engine) Next() error {
	e.mu.Lock()
	switch e.state {
	case StateInProgress:
		if e.index+1 < len(e.questions) {
			e.index++
			e.mu.Unlock()
			return nil
		}
		fire := e.completeLocked()
		e.mu.Unlock()
		fire()
		return nil
	case StateReviewing:
		if e.index+1 < len(e.questions) {
			e.index++
		}
		e.mu.Unlock()
		return nil
	default:
		e.mu.Unlock()
		return ErrNotInProgress
	}
}

func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateInProgress && e.state != StateReviewing {
		return ErrNotInProgress
	}
	if e.index > 0 {
		e.index--
	}
	return nil
}

// Complete force-finishes the session (explicit submit button). Idempotent
// once completed.
func (e *Engine) Complete() error {
	e.mu.Lock()
	if e.state == StateCompleted {
		e.mu.Unlock()
		return nil
	}
	if e.state != StateInProgress {
		e.mu.Unlock()
		return ErrNotInProgress
	}
	fire := e.completeLocked()
	e.mu.Unlock()
	fire()
	return nil
}

// Review switches a completed session to read-only replay. No timer runs in
// review.
func (e *Engine) Review() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateCompleted {
		return ErrNotCompleted
	}
	e.state = StateReviewing
	e.index = 0
	return nil
}

// Restart wipes answers and the clock and begins again. Practice mode only;
// the caller decides whether a restart is allowed.
func (e *Engine) Restart() error {
	e.mu.Lock()
	if e.state == StateIdle {
		e.mu.Unlock()
		return ErrNotCompleted
	}
	e.releaseTickerLocked()
	for i := range e.answers {
		e.answers[i] = Unanswered
	}
	e.index = 0
	e.state = StateInProgress
	e.startedAt = e.clock.Now()
	if e.budget > 0 {
		e.remaining = int(e.budget / time.Second)
		e.runTicker()
	}
	e.mu.Unlock()
	return nil
}

// Stop releases the timer without scoring. The unmount path: a session
// abandoned mid-flight must not leave a ticking goroutine behind.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseTickerLocked()
	if e.state == StateInProgress {
		e.state = StateIdle
	}
}

// Score reports the final tallies. Valid once completed (or reviewing).
func (e *Engine) Score() (Score, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateCompleted && e.state != StateReviewing {
		return Score{}, ErrNotCompleted
	}
	return e.scoreLocked(), nil
}

func (e *Engine) scoreLocked() Score {
	s := Score{Total: len(e.questions)}
	for i, a := range e.answers {
		switch {
		case a == Unanswered:
			s.Skipped++
		case a == e.questions[i].CorrectIndex:
			s.Correct++
		default:
			s.Wrong++
		}
	}
	s.ElapsedSeconds = int(e.finishedAt.Sub(e.startedAt) / time.Second)
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) * 100 / float64(s.Total)))
	}
	return s
}

// State reports the current machine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Index reports the current question position.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// Current returns the question at the current position.
func (e *Engine) Current() Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.questions[e.index]
}

// Answers returns a copy of the answers array; Unanswered marks skips.
func (e *Engine) Answers() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]int, len(e.answers))
	copy(out, e.answers)
	return out
}

// RemainingSeconds reports the countdown. Zero when untimed or expired.
func (e *Engine) RemainingSeconds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateInProgress || e.budget == 0 {
		return 0
	}
	return e.remaining
}
