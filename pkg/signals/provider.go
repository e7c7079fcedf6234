// Package signals fetches live city signals from independent third-party data
// providers and merges them into one record per pipeline run.
//
// Provider clients are fail-fast: they return an error on any transport
// problem, non-2xx status, or undecodable payload. The aggregator is the
// tolerant boundary — it swallows provider errors and substitutes sentinel
// field values, so a fetch never fails outright.
package signals

import (
	"context"
	"errors"
	"time"
)

const defaultTimeoutSeconds = 15

var (
	// ErrUnexpectedStatus is returned when a provider responds with a non-2xx
	// status code.
	ErrUnexpectedStatus = errors.New("provider returned unexpected status")
	// ErrUnknownCity is returned when the city has no entry in the
	// city-to-state mapping required by the air-quality provider.
	ErrUnknownCity = errors.New("no state mapping for city")
)

// WeatherReport is the weather provider's result for one city.
type WeatherReport struct {
	Temperature float64
	Condition   string
}

// WeatherProvider reports current weather for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (WeatherReport, error)
}

// AirQualityProvider reports the current US AQI for a city.
type AirQualityProvider interface {
	CurrentAQI(ctx context.Context, city string) (int, error)
}

// HolidayProvider lists holidays observed on a given day.
type HolidayProvider interface {
	HolidaysOn(ctx context.Context, day time.Time) ([]string, error)
}

// NewsProvider lists top sport/event headlines for a city, most relevant
// first.
type NewsProvider interface {
	TopHeadlines(ctx context.Context, city string) ([]string, error)
}
