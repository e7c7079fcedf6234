package models

// ImpactRating is the reasoning service's prediction of a post's potential.
type ImpactRating string

const (
	ImpactHigh   ImpactRating = "High"
	ImpactMedium ImpactRating = "Medium"
	ImpactLow    ImpactRating = "Low"
)

// CopyPackage is the output of the first creative sub-call: post copy plus the
// audience and impact analysis. Every field is required; a response missing
// any of them is rejected at the service boundary.
type CopyPackage struct {
	PostText        string       `json:"post_text"        validate:"required,max=500"`
	Hashtags        []string     `json:"hashtags"         validate:"required,min=3,max=5"`
	TargetAudience  []string     `json:"target_audience"  validate:"required,min=2,max=3"`
	ImpactRating    ImpactRating `json:"predicted_impact_rating"    validate:"required,oneof=High Medium Low"`
	ImpactReasoning string       `json:"predicted_impact_reasoning" validate:"required"`
}

// CreativeAssets is the full artifact set assembled across the three creative
// sub-calls. A run may not enter review unless Complete reports true.
type CreativeAssets struct {
	CopyPackage

	ImagePrompt string `json:"image_prompt"`
	ImagePath   string `json:"image_path"`
}

// Complete reports whether every field required for publication is present.
func (c CreativeAssets) Complete() bool {
	return c.PostText != "" &&
		len(c.Hashtags) > 0 &&
		len(c.TargetAudience) > 0 &&
		c.ImpactRating != "" &&
		c.ImpactReasoning != "" &&
		c.ImagePrompt != "" &&
		c.ImagePath != ""
}
