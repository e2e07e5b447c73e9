package gemini

import "fmt"

// Reason classifies a generation failure.
type Reason string

const (
	ReasonMissingKey Reason = "missing_key"
	ReasonRequest    Reason = "request"
	ReasonTimeout    Reason = "timeout"
	ReasonNoImage    Reason = "no_image"
	ReasonNoText     Reason = "no_text"
)

// Error is returned by every Client method that fails.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "generation failed: " + string(e.Reason)
	}
	return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
