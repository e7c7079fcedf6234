package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ayush19353/geopulse-ai-app/pkg/catalog"
)

// AirQualityClient queries an IQAir-compatible city endpoint. The provider
// addresses cities by (city, state, country), so the client resolves the
// state through the catalog's mapping table first.
type AirQualityClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	country string
}

func NewAirQualityClient(baseURL, apiKey string) *AirQualityClient {
	return &AirQualityClient{
		client:  &http.Client{Timeout: defaultTimeoutSeconds * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		country: "India",
	}
}

type airQualityResponse struct {
	Data struct {
		Current struct {
			Pollution struct {
				AQIUS int `json:"aqius"`
			} `json:"pollution"`
		} `json:"current"`
	} `json:"data"`
}

func (c *AirQualityClient) CurrentAQI(ctx context.Context, city string) (int, error) {
	state, ok := catalog.StateFor(city)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	query := url.Values{}
	query.Set("city", city)
	query.Set("state", state)
	query.Set("country", c.country)
	query.Set("key", c.apiKey)

	endpoint := c.baseURL + "/v2/city?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create air-quality request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("air-quality request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("air-quality provider status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var payload airQualityResponse

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return 0, fmt.Errorf("failed to decode air-quality response: %w", err)
	}

	return payload.Data.Current.Pollution.AQIUS, nil
}
