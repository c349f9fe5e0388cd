// Package session owns the lifecycle of one in-progress practice test:
// requesting generation, running the countdown, recording answers and
// computing the score on submit or timeout.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/practico-app/practico-lambda/internal/generator"
)

// Phase is the lifecycle stage of a quiz session. Transitions only move
// configuring → generating → active → revealed, plus Reset back to
// configuring from anywhere.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseGenerating
	PhaseActive
	PhaseRevealed
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseGenerating:
		return "generating"
	case PhaseActive:
		return "active"
	case PhaseRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrNotConfiguring     = errors.New("session already holds a generated test")
	ErrNotActive          = errors.New("session is not active")
	ErrSessionRevealed    = errors.New("answers are locked after reveal")
	ErrSessionReset       = errors.New("session was reset while generating")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrInvalidOption      = errors.New("option index out of range")
	ErrInvalidDuration    = errors.New("time allowed must be at least one minute")
)

// Generator is the session's view of the question generator endpoint.
type Generator interface {
	Generate(ctx context.Context, req generator.GenerateRequest) ([]generator.Question, error)
}

type Result struct {
	Score int
	Total int
}

// Controller drives one QuizSession. All methods are safe for
// concurrent use; the countdown goroutine and user actions funnel
// through the same mutex.
type Controller struct {
	gen Generator

	mu            sync.Mutex
	phase         Phase
	epoch         int
	questions     []generator.Question
	selected      map[int]int
	timeRemaining int
	result        Result
	hasResult     bool
	stopTimer     chan struct{}
	manualTicks   bool
}

type Option func(*Controller)

// WithManualTicks disables the internal one-second ticker; the caller
// drives the countdown through Tick. Tests use this to simulate time.
func WithManualTicks() Option {
	return func(c *Controller) { c.manualTicks = true }
}

func NewController(gen Generator, opts ...Option) *Controller {
	c := &Controller{
		gen:      gen,
		phase:    PhaseConfiguring,
		selected: make(map[int]int),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// StartGeneration requests a test and, on success, moves the session to
// active with the countdown seeded to timeAllowedMinutes. It blocks for
// the duration of the generation call. Only one request may be in
// flight; a Reset while waiting discards the eventual response.
func (c *Controller) StartGeneration(ctx context.Context, req generator.GenerateRequest, timeAllowedMinutes int) error {
	if timeAllowedMinutes <= 0 {
		return ErrInvalidDuration
	}

	c.mu.Lock()
	switch c.phase {
	case PhaseGenerating:
		c.mu.Unlock()
		return ErrGenerationInFlight
	case PhaseConfiguring:
		// proceed
	default:
		c.mu.Unlock()
		return ErrNotConfiguring
	}
	c.phase = PhaseGenerating
	epoch := c.epoch
	c.mu.Unlock()

	questions, err := c.gen.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		// The session was reset or replaced while the request was in
		// flight. The stale response must not touch the new session.
		return ErrSessionReset
	}

	if err != nil {
		c.phase = PhaseConfiguring
		return err
	}

	c.questions = questions
	c.selected = make(map[int]int)
	c.timeRemaining = timeAllowedMinutes * 60
	c.hasResult = false
	c.phase = PhaseActive
	c.startCountdownLocked()
	return nil
}

// SelectAnswer records (or overwrites) the chosen option for a question.
func (c *Controller) SelectAnswer(questionID, optionIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseRevealed {
		return ErrSessionRevealed
	}
	if c.phase != PhaseActive {
		return ErrNotActive
	}

	var question *generator.Question
	for i := range c.questions {
		if c.questions[i].ID == questionID {
			question = &c.questions[i]
			break
		}
	}
	if question == nil {
		return ErrUnknownQuestion
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return ErrInvalidOption
	}

	c.selected[questionID] = optionIndex
	return nil
}

// Submit locks the answers, stops the countdown and scores the session.
// Unanswered questions count as incorrect.
func (c *Controller) Submit() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseActive {
		return Result{}, ErrNotActive
	}

	c.revealLocked()
	return c.result, nil
}

// Tick advances the countdown by one second. Reaching zero submits the
// session exactly as Submit would. A tick arriving after the session
// left the active phase is ignored, so a pending timer firing right
// after a manual submit can never score twice.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseActive {
		return
	}

	c.timeRemaining--
	if c.timeRemaining <= 0 {
		c.timeRemaining = 0
		c.revealLocked()
	}
}

// Reset abandons the current test and returns to configuring. Any
// in-flight generation response is invalidated.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.stopCountdownLocked()
	c.questions = nil
	c.selected = make(map[int]int)
	c.timeRemaining = 0
	c.hasResult = false
	c.phase = PhaseConfiguring
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) TimeRemaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeRemaining
}

// RemainingDisplay returns the countdown formatted for the timer badge.
func (c *Controller) RemainingDisplay() string {
	return FormatTime(c.TimeRemaining())
}

func (c *Controller) Questions() []generator.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]generator.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

func (c *Controller) SelectedAnswer(questionID int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.selected[questionID]
	return idx, ok
}

// Result returns the score once the session has been revealed.
func (c *Controller) Result() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.hasResult
}

// revealLocked performs the active → revealed transition: stop the
// clock, score, lock answers. Callers hold c.mu.
func (c *Controller) revealLocked() {
	c.stopCountdownLocked()

	score := 0
	for _, q := range c.questions {
		if pick, ok := c.selected[q.ID]; ok && pick == q.CorrectAnswer {
			score++
		}
	}
	c.result = Result{Score: score, Total: len(c.questions)}
	c.hasResult = true
	c.phase = PhaseRevealed
}

func (c *Controller) startCountdownLocked() {
	if c.manualTicks {
		return
	}

	stop := make(chan struct{})
	c.stopTimer = stop
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Tick()
			}
		}
	}()
}

func (c *Controller) stopCountdownLocked() {
	if c.stopTimer != nil {
		close(c.stopTimer)
		c.stopTimer = nil
	}
}

// FormatTime renders a second count as zero-padded MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
