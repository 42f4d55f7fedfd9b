package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

// Multi-step writes run as Validate → Perform → Verify. Nothing is written
// until every input has been validated, and the caller only sees success
// once the written state has been checked.

// Step names a stage of a Pipeline.
type Step string

const (
	StepValidate Step = "validate"
	StepPerform  Step = "perform"
	StepVerify   Step = "verify"
)

// StepError records the stage a pipeline failed in.
type StepError struct {
	Step    Step
	Message string
	Cause   error
}

func (e *StepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap exposes the cause so domain errors keep their meaning.
func (e *StepError) Unwrap() error {
	return e.Cause
}

// Pipeline describes one multi-step operation. Nil steps are skipped; a nil
// Verify returns the zero output.
type Pipeline[I, P, O any] struct {
	Name     string
	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (O, error)
}

// Run executes p against input, logging each stage on the request logger
// when there is one and on fallback otherwise.
func Run[I, P, O any](ctx context.Context, fallback *slog.Logger, p Pipeline[I, P, O], input I) (O, error) {
	var (
		zero      O
		performed P
	)

	logger, ok := logging.Lookup(ctx)
	if !ok {
		logger = fallback
	}

	logger = logger.With(slog.String("operation", p.Name))
	start := time.Now()

	if p.Validate != nil {
		if err := p.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))
			return zero, &StepError{Step: StepValidate, Message: "input rejected", Cause: err}
		}
	}

	if p.Perform != nil {
		var err error

		performed, err = p.Perform(ctx, input)
		if err != nil {
			logger.ErrorContext(ctx, "perform failed", slog.Any("error", err))
			return zero, &StepError{Step: StepPerform, Message: "operation failed", Cause: err}
		}
	}

	var result O

	if p.Verify != nil {
		var err error

		result, err = p.Verify(ctx, input, performed)
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))
			return zero, &StepError{Step: StepVerify, Message: "result not confirmed", Cause: err}
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// FailedStep reports the stage err came from, if it came from a pipeline.
func FailedStep(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}

	return "", false
}
