package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NewsClient queries a NewsAPI-compatible everything endpoint for sport and
// event headlines about a city.
type NewsClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewNewsClient(baseURL, apiKey string) *NewsClient {
	return &NewsClient{
		client:  &http.Client{Timeout: defaultTimeoutSeconds * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type newsResponse struct {
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

func (c *NewsClient) TopHeadlines(ctx context.Context, city string) ([]string, error) {
	query := url.Values{}
	query.Set("q", fmt.Sprintf("(%s AND (sports OR event OR match))", city))
	query.Set("apiKey", c.apiKey)
	query.Set("sortBy", "relevancy")
	query.Set("pageSize", "1")

	endpoint := c.baseURL + "/v2/everything?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create news request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("news provider status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var payload newsResponse

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	titles := make([]string, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		titles = append(titles, article.Title)
	}

	return titles, nil
}
