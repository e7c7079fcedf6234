package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherClient queries an OpenWeatherMap-compatible current-weather endpoint.
type WeatherClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewWeatherClient creates a weather client. baseURL has no trailing slash,
// e.g. "https://api.openweathermap.org".
func NewWeatherClient(baseURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		client:  &http.Client{Timeout: defaultTimeoutSeconds * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

func (c *WeatherClient) CurrentWeather(ctx context.Context, city string) (WeatherReport, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	endpoint := c.baseURL + "/data/2.5/weather?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return WeatherReport{}, fmt.Errorf("weather provider status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var payload weatherResponse

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if len(payload.Weather) == 0 {
		return WeatherReport{}, fmt.Errorf("weather response missing conditions: %w", ErrUnexpectedStatus)
	}

	return WeatherReport{
		Temperature: payload.Main.Temp,
		Condition:   payload.Weather[0].Main,
	}, nil
}
