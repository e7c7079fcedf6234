package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/pipeline"
)

func TestTransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage models.Stage
		event pipeline.Event
		want  models.Stage
	}{
		{"ranking advances selection to approval", models.StageSelection, pipeline.EventTriggersRanked, models.StageApproval},
		{"empty ranking keeps selection", models.StageSelection, pipeline.EventRankingEmpty, models.StageSelection},
		{"ranking failure keeps selection", models.StageSelection, pipeline.EventRankingFailed, models.StageSelection},
		{"confirmation advances approval to generation", models.StageApproval, pipeline.EventTriggerConfirmed, models.StageGeneration},
		{"generation failure rolls back to approval", models.StageGeneration, pipeline.EventGenerationFailed, models.StageApproval},
		{"generation success advances to review", models.StageGeneration, pipeline.EventGenerationSucceeded, models.StageReview},
		{"publish attempt advances review to done", models.StageReview, pipeline.EventPublishAttempted, models.StageDone},
		{"restart from selection", models.StageSelection, pipeline.EventRestart, models.StageSelection},
		{"restart from approval", models.StageApproval, pipeline.EventRestart, models.StageSelection},
		{"restart from generation", models.StageGeneration, pipeline.EventRestart, models.StageSelection},
		{"restart from review", models.StageReview, pipeline.EventRestart, models.StageSelection},
		{"restart from done", models.StageDone, pipeline.EventRestart, models.StageSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, err := pipeline.Transition(tt.stage, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestTransitionRejectsPairsOutsideTheTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage models.Stage
		event pipeline.Event
	}{
		{"confirm before ranking", models.StageSelection, pipeline.EventTriggerConfirmed},
		{"publish before generation", models.StageApproval, pipeline.EventPublishAttempted},
		{"rank during generation", models.StageGeneration, pipeline.EventTriggersRanked},
		{"confirm during review", models.StageReview, pipeline.EventTriggerConfirmed},
		{"publish twice", models.StageDone, pipeline.EventPublishAttempted},
		{"unknown stage", models.Stage("limbo"), pipeline.EventRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, err := pipeline.Transition(tt.stage, tt.event)
			require.ErrorIs(t, err, pipeline.ErrInvalidTransition)
			assert.Equal(t, tt.stage, next, "a rejected event must not move the stage")
		})
	}
}
