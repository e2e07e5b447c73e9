package journey

import (
	"errors"
	"fmt"

	"github.com/playperu/worldtour/internal/gemini"
)

var (
	ErrNotFound   = errors.New("journey not found")
	ErrBusy       = errors.New("journey is busy")
	ErrWrongPhase = errors.New("action not allowed in the current phase")
	ErrNoHistory  = errors.New("journey has no completed stops")
)

// ValidationError reports bad player input. The journey is left as it
// was.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// GenerationError wraps a failed generation step. The journey has been
// rolled back to the phase where the step can be retried.
type GenerationError struct {
	Step string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Reason is the generator's classification of the failure, or "request"
// when the generator gave none.
func (e *GenerationError) Reason() string {
	var gerr *gemini.Error
	if errors.As(e.Err, &gerr) {
		return string(gerr.Reason)
	}
	return string(gemini.ReasonRequest)
}

func wrongPhase(action string, p Phase) error {
	return fmt.Errorf("%s during %s: %w", action, p, ErrWrongPhase)
}
