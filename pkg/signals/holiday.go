package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HolidayClient queries a Calendarific-compatible holidays endpoint for a
// single day.
type HolidayClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	country string
}

func NewHolidayClient(baseURL, apiKey string) *HolidayClient {
	return &HolidayClient{
		client:  &http.Client{Timeout: defaultTimeoutSeconds * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		country: "IN",
	}
}

type holidayResponse struct {
	Response struct {
		Holidays []struct {
			Name string `json:"name"`
		} `json:"holidays"`
	} `json:"response"`
}

func (c *HolidayClient) HolidaysOn(ctx context.Context, day time.Time) ([]string, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("country", c.country)
	query.Set("year", strconv.Itoa(day.Year()))
	query.Set("month", strconv.Itoa(int(day.Month())))
	query.Set("day", strconv.Itoa(day.Day()))

	endpoint := c.baseURL + "/api/v2/holidays?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("holiday provider status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var payload holidayResponse

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	names := make([]string, 0, len(payload.Response.Holidays))
	for _, holiday := range payload.Response.Holidays {
		names = append(names, holiday.Name)
	}

	return names, nil
}
