package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

func TestSummaryRendersAllFields(t *testing.T) {
	t.Parallel()

	record := models.SignalRecord{
		City:          "Delhi",
		Temperature:   28.5,
		TemperatureOK: true,
		Condition:     "Haze",
		AQI:           230,
		AQIOK:         true,
		Holiday:       "Diwali",
		TopEvent:      "India vs Australia tonight",
	}

	assert.Equal(t,
		"Current conditions in Delhi: Weather is Haze (28.5°C), AQI is 230. Today's Holiday: Diwali. Top Event/News: India vs Australia tonight.",
		record.Summary())
}

func TestSummarySubstitutesSentinels(t *testing.T) {
	t.Parallel()

	record := models.SignalRecord{
		City:      "Mumbai",
		Condition: models.Unavailable,
		Holiday:   models.NoSignal,
		TopEvent:  models.Unavailable,
	}

	summary := record.Summary()
	assert.Contains(t, summary, "Weather is N/A (N/A)")
	assert.Contains(t, summary, "AQI is N/A")
	assert.Contains(t, summary, "Today's Holiday: None")
}
