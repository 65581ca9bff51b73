// Package qualify implements the scored staff-qualification test gating
// application approval eligibility.
package qualify

import (
	"errors"
	"fmt"

	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/common/metrics"
)

// State of the test engine.
type State string

const (
	StateUnopened   State = "unopened"
	StateInProgress State = "in-progress"
	StatePassed     State = "passed"
	StateFailed     State = "failed"
)

var (
	ErrNotOpen           = errors.New("test has not been opened")
	ErrAlreadyOpen       = errors.New("test is already open")
	ErrAlreadyScored     = errors.New("test has already been scored")
	ErrIncompleteAnswers = errors.New("every question must be answered before submitting")
	ErrUnknownQuestion   = errors.New("unknown question id")
	ErrOptionOutOfRange  = errors.New("option index out of range")
	ErrNotFailed         = errors.New("re-attempt is only possible after a failed attempt")
)

// Engine runs one qualification test session: Unopened → InProgress →
// scored → Passed or Failed. A failed attempt may return to InProgress with
// answers retained.
type Engine struct {
	questions []Question
	answers   map[string]int
	threshold int
	state     State
	requestID string
	result    *Result
	logger    logger.Logger

	// onPassed fires once per passing attempt with the completion payload.
	onPassed func(Completion)
}

// NewEngine creates an unopened engine over the fixed question set.
func NewEngine(thresholdPercent int, log logger.Logger) *Engine {
	if thresholdPercent <= 0 {
		thresholdPercent = DefaultThresholdPercent
	}
	return &Engine{
		questions: DefaultQuestions(),
		answers:   make(map[string]int),
		threshold: thresholdPercent,
		state:     StateUnopened,
		logger:    log.WithFields(map[string]interface{}{"component": "qualify"}),
	}
}

// OnPassed registers the completion callback.
func (e *Engine) OnPassed(fn func(Completion)) {
	e.onPassed = fn
}

// Begin opens the test. It is triggered externally by a successful
// application submission and carries that submission's request ID.
func (e *Engine) Begin(requestID string) error {
	if e.state != StateUnopened {
		return ErrAlreadyOpen
	}
	e.state = StateInProgress
	e.requestID = requestID
	e.logger.Info("qualification test opened", map[string]interface{}{
		"requestId": requestID,
	})
	return nil
}

// Questions returns the ordered question set for rendering.
func (e *Engine) Questions() []Question {
	return e.questions
}

func (e *Engine) State() State { return e.state }

// RecordAnswer stores the chosen option for a question. Recording is
// idempotent per question; the last write wins. It never transitions state.
func (e *Engine) RecordAnswer(questionID string, optionIndex int) error {
	if e.state != StateInProgress {
		return ErrNotOpen
	}

	q := e.findQuestion(questionID)
	if q == nil {
		return ErrUnknownQuestion
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrOptionOutOfRange
	}

	e.answers[questionID] = optionIndex
	return nil
}

// Answer returns the recorded option for a question, if any.
func (e *Engine) Answer(questionID string) (int, bool) {
	idx, ok := e.answers[questionID]
	return idx, ok
}

// CanSubmit reports whether every question has a recorded answer.
// Correctness is irrelevant here.
func (e *Engine) CanSubmit() bool {
	return len(e.answers) == len(e.questions)
}

// Submit scores the attempt. It refuses while any question is unanswered.
// Scoring is deterministic: 100 * correct / total. A score meeting the
// threshold passes and fires the completion callback; otherwise the attempt
// fails and the engine waits for an explicit re-attempt.
func (e *Engine) Submit() (*Result, error) {
	switch e.state {
	case StateInProgress:
	case StateUnopened:
		return nil, ErrNotOpen
	default:
		return nil, ErrAlreadyScored
	}

	if !e.CanSubmit() {
		return nil, ErrIncompleteAnswers
	}

	correct := 0
	for _, q := range e.questions {
		if e.answers[q.ID] == q.CorrectOptionIndex {
			correct++
		}
	}
	score := 100 * float64(correct) / float64(len(e.questions))
	passed := score >= float64(e.threshold)

	result := &Result{
		Score:            score,
		CorrectCount:     correct,
		TotalQuestions:   len(e.questions),
		ThresholdPercent: e.threshold,
		Passed:           passed,
	}

	if passed {
		e.state = StatePassed
		result.Message = fmt.Sprintf("You scored %.0f%% and passed the qualification test.", score)
		metrics.QualificationTests.WithLabelValues("passed").Inc()
	} else {
		e.state = StateFailed
		result.Message = fmt.Sprintf("You scored %.0f%%. A score of at least %d%% is required. You may try again.", score, e.threshold)
		metrics.QualificationTests.WithLabelValues("failed").Inc()
	}
	e.result = result

	e.logger.Info("qualification test scored", map[string]interface{}{
		"requestId": e.requestID,
		"score":     score,
		"passed":    passed,
	})

	if passed && e.onPassed != nil {
		e.onPassed(Completion{RequestID: e.requestID, Score: score})
	}
	return result, nil
}

// Result returns the last scored result, nil before the first submit.
func (e *Engine) Result() *Result {
	return e.result
}

// Reattempt reopens a failed test. Previously recorded answers are retained
// so the candidate can revise rather than start over.
func (e *Engine) Reattempt() error {
	if e.state != StateFailed {
		return ErrNotFailed
	}
	e.state = StateInProgress
	return nil
}

func (e *Engine) findQuestion(id string) *Question {
	for i := range e.questions {
		if e.questions[i].ID == id {
			return &e.questions[i]
		}
	}
	return nil
}
