package web

import "github.com/ayush19353/geopulse-ai-app/pkg/models"

// CreateSessionRequest selects the brand and city a new session works with.
type CreateSessionRequest struct {
	Industry string `json:"industry" validate:"required"`
	Brand    string `json:"brand"    validate:"required"`
	City     string `json:"city"     validate:"required"`
}

// SelectTriggerRequest confirms either a ranked trigger by index or a
// free-form custom trigger. Exactly one of the two must be provided.
type SelectTriggerRequest struct {
	Index  *int           `json:"index,omitempty"`
	Custom *CustomTrigger `json:"custom,omitempty"`
}

// CustomTrigger is the operator's own trigger/tone pair.
type CustomTrigger struct {
	Trigger string `json:"trigger" validate:"required"`
	Tone    string `json:"tone"    validate:"required"`
}

// TriggerOption is one selectable entry on the approval screen. The ranked
// triggers are listed first, followed by exactly one custom-trigger option.
type TriggerOption struct {
	Index   int             `json:"index"`
	Custom  bool            `json:"custom"`
	Trigger *models.Trigger `json:"trigger,omitempty"`
}

// SessionResponse is the standard session envelope: the run snapshot plus
// the approval options derived from it.
type SessionResponse struct {
	SessionID string          `json:"session_id"`
	Run       models.Run      `json:"run"`
	Options   []TriggerOption `json:"options,omitempty"`
}

// triggerOptions builds the approval options for a run: every ranked trigger
// plus the always-present custom entry.
func triggerOptions(run models.Run) []TriggerOption {
	if run.Stage != models.StageApproval {
		return nil
	}

	options := make([]TriggerOption, 0, len(run.RankedTriggers)+1)
	for i := range run.RankedTriggers {
		options = append(options, TriggerOption{Index: i, Trigger: &run.RankedTriggers[i]})
	}

	options = append(options, TriggerOption{Index: len(run.RankedTriggers), Custom: true})

	return options
}
