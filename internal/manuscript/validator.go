package manuscript

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mathquest/app/internal/models"
)

// ErrValidationTimeout is returned by Run when the validator does not answer
// within its deadline.
var ErrValidationTimeout = errors.New("manuscript validation timed out")

// ErrEmptyManuscript is returned when a justification carries no image.
var ErrEmptyManuscript = errors.New("manuscript is empty")

// Validator judges a handwritten solution for a question.
type Validator interface {
	Validate(ctx context.Context, m models.Manuscript, q models.Question) (models.ValidationOutcome, error)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, m models.Manuscript, q models.Question) (models.ValidationOutcome, error)

func (f ValidatorFunc) Validate(ctx context.Context, m models.Manuscript, q models.Question) (models.ValidationOutcome, error) {
	return f(ctx, m, q)
}

const (
	FeedbackValid   = "Resolução manuscrita validada! Os passos estão claros e organizados."
	FeedbackInvalid = "Cálculo ilegível ou incompleto. Bônus de manuscrito anulado, mas você ganhou os 30% base."
	FeedbackTimeout = "Não foi possível validar o manuscrito a tempo. Você ganhou os 30% base."
)

// Fixed always returns the same verdict.
func Fixed(valid bool) Validator {
	return ValidatorFunc(func(ctx context.Context, _ models.Manuscript, _ models.Question) (models.ValidationOutcome, error) {
		if err := ctx.Err(); err != nil {
			return models.ValidationOutcome{}, err
		}
		return verdict(valid), nil
	})
}

func verdict(valid bool) models.ValidationOutcome {
	if valid {
		return models.ValidationOutcome{IsValid: true, FeedbackMessage: FeedbackValid}
	}
	return models.ValidationOutcome{IsValid: false, FeedbackMessage: FeedbackInvalid}
}

type result struct {
	outcome models.ValidationOutcome
	err     error
}

// Run invokes v with a deadline. Any failure yields an invalid outcome along
// with the error, so callers can always fall back to the base reward. A
// canceled parent context is reported as ctx.Err(), not as a timeout.
func Run(ctx context.Context, v Validator, m models.Manuscript, q models.Question, timeout time.Duration) (models.ValidationOutcome, error) {
	if m.Empty() {
		return verdict(false), ErrEmptyManuscript
	}

	vctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so the goroutine never blocks if we stop waiting.
	done := make(chan result, 1)
	go func() {
		out, err := v.Validate(vctx, m, q)
		done <- result{outcome: out, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if ctx.Err() != nil {
				return verdict(false), ctx.Err()
			}
			if errors.Is(r.err, context.DeadlineExceeded) {
				return timedOut(), ErrValidationTimeout
			}
			return verdict(false), fmt.Errorf("validate manuscript: %w", r.err)
		}
		return r.outcome, nil
	case <-vctx.Done():
		if ctx.Err() != nil {
			return verdict(false), ctx.Err()
		}
		return timedOut(), ErrValidationTimeout
	}
}

func timedOut() models.ValidationOutcome {
	return models.ValidationOutcome{IsValid: false, FeedbackMessage: FeedbackTimeout}
}
