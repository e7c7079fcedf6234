package pipeline

import "errors"

var (
	// ErrInvalidStage is returned when an operation is invoked outside the
	// stage it belongs to.
	ErrInvalidStage = errors.New("operation not valid in current stage")
	// ErrTriggerIndex is returned when the operator selects a ranked trigger
	// index that does not exist.
	ErrTriggerIndex = errors.New("trigger index out of range")
	// ErrAssetsIncomplete guards entry into review: a run may not advance
	// unless every creative field is populated.
	ErrAssetsIncomplete = errors.New("creative assets incomplete")
)
