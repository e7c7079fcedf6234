package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

func completeAssets() models.CreativeAssets {
	return models.CreativeAssets{
		CopyPackage: models.CopyPackage{
			PostText:        "Hazy outside? Stay in, we deliver.",
			Hashtags:        []string{"#a", "#b", "#c"},
			TargetAudience:  []string{"students", "professionals"},
			ImpactRating:    models.ImpactHigh,
			ImpactReasoning: "Comfort food demand rises indoors.",
		},
		ImagePrompt: "A cozy indoor dinner scene",
		ImagePath:   "/tmp/geopulse_s1.png",
	}
}

func TestCompleteRequiresEveryField(t *testing.T) {
	t.Parallel()

	assert.True(t, completeAssets().Complete())

	tests := []struct {
		name  string
		strip func(*models.CreativeAssets)
	}{
		{"post text", func(a *models.CreativeAssets) { a.PostText = "" }},
		{"hashtags", func(a *models.CreativeAssets) { a.Hashtags = nil }},
		{"target audience", func(a *models.CreativeAssets) { a.TargetAudience = nil }},
		{"impact rating", func(a *models.CreativeAssets) { a.ImpactRating = "" }},
		{"impact reasoning", func(a *models.CreativeAssets) { a.ImpactReasoning = "" }},
		{"image prompt", func(a *models.CreativeAssets) { a.ImagePrompt = "" }},
		{"image path", func(a *models.CreativeAssets) { a.ImagePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assets := completeAssets()
			tt.strip(&assets)
			assert.False(t, assets.Complete())
		})
	}
}
