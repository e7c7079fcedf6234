// Package models defines the core domain models for the city-signal content pipeline.
package models

// Industry identifies a vertical in the brand catalog.
type Industry string

const (
	IndustryFashion     Industry = "Fashion"
	IndustryFood        Industry = "Food & Q-Commerce"
	IndustryElectronics Industry = "Electronics"
)

// BrandProfile describes one brand from the static catalog. A profile is
// immutable once selected for a session.
type BrandProfile struct {
	Industry        Industry `json:"industry"         validate:"required"`
	BrandName       string   `json:"brand_name"       validate:"required"`
	Voice           string   `json:"voice"            validate:"required"`
	ProductExamples []string `json:"product_examples" validate:"required,min=1"`
}
