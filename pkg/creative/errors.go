package creative

import (
	"errors"
	"fmt"
)

// SubCall names one of the three sequential generation sub-calls so the
// orchestrator can report which one broke and retry from there.
type SubCall string

const (
	SubCallCopy        SubCall = "copy"
	SubCallImagePrompt SubCall = "image_prompt"
	SubCallRender      SubCall = "render"
)

// ErrMissingFields is returned when the reasoning service's copy response
// decoded but lacked one or more required fields.
var ErrMissingFields = errors.New("copy response missing required fields")

// StageError wraps a sub-call failure with the sub-call that produced it.
type StageError struct {
	SubCall SubCall
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("creative %s sub-call failed: %v", e.SubCall, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedSubCall extracts the failed sub-call from an error chain.
func FailedSubCall(err error) (SubCall, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.SubCall, true
	}

	return "", false
}
