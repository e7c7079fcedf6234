package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush19353/geopulse-ai-app/pkg/catalog"
	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

func TestEveryCityHasAState(t *testing.T) {
	t.Parallel()

	for _, city := range catalog.Cities {
		state, ok := catalog.StateFor(city)
		assert.True(t, ok, "city %s has no state mapping", city)
		assert.NotEmpty(t, state)
	}

	_, ok := catalog.StateFor("Atlantis")
	assert.False(t, ok)
}

func TestBrandsPerIndustry(t *testing.T) {
	t.Parallel()

	for _, industry := range catalog.Industries() {
		assert.Len(t, catalog.Brands(industry), 2, "industry %s", industry)
	}

	assert.Nil(t, catalog.Brands(models.Industry("Aerospace")))
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		industry models.Industry
		brand    string
	}{
		{"lowercase", models.IndustryFood, "zomato"},
		{"mixed case", models.IndustryFood, "Zomato"},
		{"uppercase", models.IndustryFashion, "H&M"},
		{"brand with space", models.IndustryElectronics, "Reliance Digital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile, err := catalog.Lookup(tt.industry, tt.brand)
			require.NoError(t, err)
			assert.Equal(t, tt.industry, profile.Industry)
			assert.NotEmpty(t, profile.Voice)
			assert.NotEmpty(t, profile.ProductExamples)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := catalog.Lookup(models.IndustryFood, "h&m")
	require.ErrorIs(t, err, catalog.ErrBrandNotFound, "brand keys are scoped to their industry")

	_, err = catalog.Lookup(models.Industry("Aerospace"), "zomato")
	require.ErrorIs(t, err, catalog.ErrBrandNotFound)
}
