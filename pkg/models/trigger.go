package models

// Trigger is one candidate marketing angle proposed by the strategist, ranked
// high-priority first. The operator picks exactly one (or substitutes a custom
// trigger) before the run advances.
type Trigger struct {
	Trigger   string `json:"trigger"   validate:"required"`
	Tone      string `json:"tone"      validate:"required"`
	Reasoning string `json:"reasoning"`
}
