// Package pipeline implements the five-state workflow driving a content run:
// signal aggregation and trigger ranking, operator approval, creative
// generation, review, and publication. Transitions are monotonic forward
// except for explicit operator- or failure-triggered rollbacks to a named
// earlier stage.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

// Event is a discrete occurrence the state machine reacts to.
type Event string

const (
	// EventTriggersRanked fires when aggregation and ranking succeeded with a
	// non-empty trigger list.
	EventTriggersRanked Event = "triggers_ranked"
	// EventRankingEmpty fires when ranking returned zero triggers; the run
	// stays in selection and the operator sees a notice.
	EventRankingEmpty Event = "ranking_empty"
	// EventRankingFailed fires when aggregation or ranking raised.
	EventRankingFailed Event = "ranking_failed"
	// EventTriggerConfirmed fires when the operator confirms a built-in or
	// custom trigger.
	EventTriggerConfirmed Event = "trigger_confirmed"
	// EventGenerationFailed fires when any of the three creative sub-calls
	// failed; the run rolls back to approval for a retry.
	EventGenerationFailed Event = "generation_failed"
	// EventGenerationSucceeded fires when all three sub-calls completed.
	EventGenerationSucceeded Event = "generation_succeeded"
	// EventPublishAttempted fires once every destination has been attempted,
	// regardless of individual outcomes.
	EventPublishAttempted Event = "publish_attempted"
	// EventRestart fires when the operator abandons or finishes a run and
	// starts over.
	EventRestart Event = "restart"
)

// ErrInvalidTransition is returned for (stage, event) pairs outside the
// transition table.
var ErrInvalidTransition = errors.New("invalid stage transition")

var transitions = map[models.Stage]map[Event]models.Stage{
	models.StageSelection: {
		EventTriggersRanked: models.StageApproval,
		EventRankingEmpty:   models.StageSelection,
		EventRankingFailed:  models.StageSelection,
		EventRestart:        models.StageSelection,
	},
	models.StageApproval: {
		EventTriggerConfirmed: models.StageGeneration,
		EventRestart:          models.StageSelection,
	},
	models.StageGeneration: {
		EventGenerationFailed:    models.StageApproval,
		EventGenerationSucceeded: models.StageReview,
		EventRestart:             models.StageSelection,
	},
	models.StageReview: {
		EventPublishAttempted: models.StageDone,
		EventRestart:          models.StageSelection,
	},
	models.StageDone: {
		EventRestart: models.StageSelection,
	},
}

// Transition is the pure transition function. It never mutates anything and
// is independently testable without any presentation layer.
func Transition(stage models.Stage, event Event) (models.Stage, error) {
	next, ok := transitions[stage][event]
	if !ok {
		return stage, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, stage)
	}

	return next, nil
}
