package models

import "time"

// Stage is the pipeline run's position in the five-state workflow.
type Stage string

const (
	StageSelection  Stage = "selection"
	StageApproval   Stage = "approval"
	StageGeneration Stage = "generation"
	StageReview     Stage = "review"
	StageDone       Stage = "done"
)

// PublishOutcome records one destination's delivery result. Destinations
// succeed or fail independently; the run reaches done either way.
type PublishOutcome struct {
	Destination string `json:"destination"`
	OK          bool   `json:"ok"`
	Detail      string `json:"detail"`
}

// Run is the single mutable record of one pipeline run. It is owned
// exclusively by the orchestrator: the web layer and external services read
// and write it only through orchestrator operations.
type Run struct {
	ID              string           `json:"id"`
	Stage           Stage            `json:"stage"`
	City            string           `json:"city"`
	Profile         BrandProfile     `json:"profile"`
	Signals         SignalRecord     `json:"signals"`
	RankedTriggers  []Trigger        `json:"ranked_triggers"`
	SelectedTrigger *Trigger         `json:"selected_trigger,omitempty"`
	Assets          CreativeAssets   `json:"assets"`
	Outcomes        []PublishOutcome `json:"outcomes,omitempty"`
	Notice          string           `json:"notice,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}
