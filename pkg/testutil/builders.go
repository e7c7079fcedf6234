// Package testutil provides test data builders and utilities for testing.
package testutil

import (
	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

// CreateTestProfile creates a BrandProfile with default values that can be
// overridden.
func CreateTestProfile(overrides ...func(*models.BrandProfile)) models.BrandProfile {
	profile := models.BrandProfile{
		Industry:        models.IndustryFood,
		BrandName:       "zomato",
		Voice:           "Witty, playful, relatable, and very food-centric. Uses humor, puns.",
		ProductExamples: []string{"Biryani", "Pizza", "Restaurant deals"},
	}

	for _, override := range overrides {
		override(&profile)
	}

	return profile
}

// CreateTestSignals creates a fully populated SignalRecord for Delhi.
func CreateTestSignals(overrides ...func(*models.SignalRecord)) models.SignalRecord {
	record := models.SignalRecord{
		City:          "Delhi",
		Temperature:   28.5,
		TemperatureOK: true,
		Condition:     "Haze",
		AQI:           230,
		AQIOK:         true,
		Holiday:       models.NoSignal,
		TopEvent:      "India vs Australia: Delhi gears up for the big match",
	}

	for _, override := range overrides {
		override(&record)
	}

	return record
}

// CreateTestTrigger creates a high-AQI trigger.
func CreateTestTrigger(overrides ...func(*models.Trigger)) models.Trigger {
	trigger := models.Trigger{
		Trigger:   "Heavy Haze",
		Tone:      "Cozy",
		Reasoning: "AQI>200",
	}

	for _, override := range overrides {
		override(&trigger)
	}

	return trigger
}

// CreateTestAssets creates a complete CreativeAssets record.
func CreateTestAssets(overrides ...func(*models.CreativeAssets)) models.CreativeAssets {
	assets := models.CreativeAssets{
		CopyPackage: models.CopyPackage{
			PostText:        "Hazy outside? Perfect biryani weather. Stay in, we deliver.",
			Hashtags:        []string{"#Zomato", "#CozyNights", "#BiryaniTime"},
			TargetAudience:  []string{"young professionals", "students"},
			ImpactRating:    models.ImpactHigh,
			ImpactReasoning: "Comfort-food cravings spike when people stay indoors.",
		},
		ImagePrompt: "A happy person indoors enjoying steaming biryani by a window with a softly blurred city skyline",
		ImagePath:   "/tmp/geopulse_test.png",
	}

	for _, override := range overrides {
		override(&assets)
	}

	return assets
}
