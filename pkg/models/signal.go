package models

import "fmt"

// Unavailable is the sentinel recorded for a signal field whose provider call
// failed. Aggregation never fails outright: a SignalRecord is always complete,
// with failed fields carrying this marker.
const Unavailable = "N/A"

// NoSignal is the default for free-text fields when the provider returned an
// empty result set.
const NoSignal = "None"

// SignalRecord holds one city's live signals for a single pipeline run. It is
// built once by the aggregator and only read by downstream stages.
type SignalRecord struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	// TemperatureOK is false when the weather provider failed and Temperature
	// carries no meaning.
	TemperatureOK bool   `json:"temperature_ok"`
	Condition     string `json:"condition"`
	AQI           int    `json:"aqi"`
	AQIOK         bool   `json:"aqi_ok"`
	Holiday       string `json:"holiday"`
	TopEvent      string `json:"top_event"`
}

// Summary renders the record as the one-sentence condition report handed to
// the reasoning service.
func (s SignalRecord) Summary() string {
	temp := Unavailable
	if s.TemperatureOK {
		temp = fmt.Sprintf("%.1f°C", s.Temperature)
	}

	aqi := Unavailable
	if s.AQIOK {
		aqi = fmt.Sprintf("%d", s.AQI)
	}

	return fmt.Sprintf(
		"Current conditions in %s: Weather is %s (%s), AQI is %s. Today's Holiday: %s. Top Event/News: %s.",
		s.City, s.Condition, temp, aqi, s.Holiday, s.TopEvent,
	)
}
