package signals

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

// Aggregator merges the four providers' results into one SignalRecord per
// run. Each provider call is wrapped independently: a failure logs the error
// and leaves the sentinel in the affected field(s). Fetch always returns a
// complete record and never an error — downstream stages must stay useful
// under partial signal loss.
type Aggregator struct {
	weather WeatherProvider
	air     AirQualityProvider
	holiday HolidayProvider
	news    NewsProvider
	now     func() time.Time
	logger  *slog.Logger
}

func NewAggregator(
	weather WeatherProvider,
	air AirQualityProvider,
	holiday HolidayProvider,
	news NewsProvider,
	logger *slog.Logger,
) *Aggregator {
	return &Aggregator{
		weather: weather,
		air:     air,
		holiday: holiday,
		news:    news,
		now:     time.Now,
		logger:  logger.With("module", "signal_aggregator"),
	}
}

// WithClock overrides the aggregator's clock. Used by tests to pin the
// holiday lookup date.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now

	return a
}

// Fetch collects all signals for the city.
func (a *Aggregator) Fetch(ctx context.Context, city string) models.SignalRecord {
	a.logger.InfoContext(ctx, "Fetching live signals", "city", city)

	record := models.SignalRecord{
		City:      city,
		Condition: models.Unavailable,
		Holiday:   models.NoSignal,
		TopEvent:  models.NoSignal,
	}

	weather, err := a.weather.CurrentWeather(ctx, city)
	if err != nil {
		a.logger.ErrorContext(ctx, "Weather fetch failed", "city", city, "error", err)
	} else {
		record.Temperature = weather.Temperature
		record.TemperatureOK = true
		record.Condition = weather.Condition
	}

	aqi, err := a.air.CurrentAQI(ctx, city)
	if err != nil {
		a.logger.ErrorContext(ctx, "AQI fetch failed", "city", city, "error", err)
	} else {
		record.AQI = aqi
		record.AQIOK = true
	}

	holidays, err := a.holiday.HolidaysOn(ctx, a.now())
	if err != nil {
		a.logger.ErrorContext(ctx, "Holiday fetch failed", "city", city, "error", err)
	} else if len(holidays) > 0 {
		record.Holiday = holidays[0]
	}

	headlines, err := a.news.TopHeadlines(ctx, city)
	if err != nil {
		a.logger.ErrorContext(ctx, "News fetch failed", "city", city, "error", err)
	} else if len(headlines) > 0 {
		record.TopEvent = headlines[0]
	}

	a.logger.InfoContext(ctx, "Completed signal fetch", "city", city, "signals", record.Summary())

	return record
}
