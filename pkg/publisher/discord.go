package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

// Discord posts via an incoming webhook with the image attached.
type Discord struct {
	client     *http.Client
	webhookURL string
}

func NewDiscord(webhookURL string) *Discord {
	return &Discord{
		client:     &http.Client{Timeout: destinationTimeoutSeconds * time.Second},
		webhookURL: webhookURL,
	}
}

func (d *Discord) Name() string {
	return "discord"
}

func (d *Discord) Publish(ctx context.Context, post Post) models.PublishOutcome {
	failure := func(err error) models.PublishOutcome {
		return models.PublishOutcome{Destination: d.Name(), OK: false, Detail: err.Error()}
	}

	file, err := os.Open(post.ImagePath)
	if err != nil {
		return failure(fmt.Errorf("failed to open image: %w", err))
	}
	defer func() {
		_ = file.Close()
	}()

	payload, err := json.Marshal(map[string]string{"content": post.Caption()})
	if err != nil {
		return failure(fmt.Errorf("failed to marshal payload: %w", err))
	}

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	err = writer.WriteField("payload_json", string(payload))
	if err != nil {
		return failure(fmt.Errorf("failed to write payload_json: %w", err))
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file1"; filename=%q`, filepath.Base(post.ImagePath)))
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	if err != nil {
		return failure(fmt.Errorf("failed to create file part: %w", err))
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return failure(fmt.Errorf("failed to stream image: %w", err))
	}

	err = writer.Close()
	if err != nil {
		return failure(fmt.Errorf("failed to finalize payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, &body)
	if err != nil {
		return failure(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
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

	return models.PublishOutcome{Destination: d.Name(), OK: true, Detail: publisherSuccessDetail}
}
