package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

const destinationTimeoutSeconds = 60

// Telegram posts via a bot's sendPhoto endpoint to a fixed chat.
type Telegram struct {
	client   *http.Client
	baseURL  string
	botToken string
	chatID   string
}

// NewTelegram creates a Telegram destination. baseURL is
// "https://api.telegram.org" in production and an httptest server in tests.
func NewTelegram(baseURL, botToken, chatID string) *Telegram {
	return &Telegram{
		client:   &http.Client{Timeout: destinationTimeoutSeconds * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		botToken: botToken,
		chatID:   chatID,
	}
}

func (t *Telegram) Name() string {
	return "telegram"
}

func (t *Telegram) Publish(ctx context.Context, post Post) models.PublishOutcome {
	failure := func(err error) models.PublishOutcome {
		return models.PublishOutcome{Destination: t.Name(), OK: false, Detail: err.Error()}
	}

	photo, err := os.Open(post.ImagePath)
	if err != nil {
		return failure(fmt.Errorf("failed to open image: %w", err))
	}
	defer func() {
		_ = photo.Close()
	}()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"chat_id":    t.chatID,
		"caption":    post.Caption(),
		"parse_mode": "Markdown",
	}
	for name, value := range fields {
		err = writer.WriteField(name, value)
		if err != nil {
			return failure(fmt.Errorf("failed to write field %s: %w", name, err))
		}
	}

	part, err := writer.CreateFormFile("photo", filepath.Base(post.ImagePath))
	if err != nil {
		return failure(fmt.Errorf("failed to create photo part: %w", err))
	}

	_, err = io.Copy(part, photo)
	if err != nil {
		return failure(fmt.Errorf("failed to stream photo: %w", err))
	}

	err = writer.Close()
	if err != nil {
		return failure(fmt.Errorf("failed to finalize payload: %w", err))
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendPhoto", t.baseURL, t.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return failure(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return failure(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)

		return failure(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}

	return models.PublishOutcome{Destination: t.Name(), OK: true, Detail: publisherSuccessDetail}
}
