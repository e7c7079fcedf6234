package creative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registered so downloads in either format decode.
	_ "image/jpeg"
)

const imageTimeoutSeconds = 120

// ErrNoImageURL is returned when the synthesis service responds without a
// downloadable URL.
var ErrNoImageURL = errors.New("image service returned no URL")

// ImageClient talks to a DALL·E-compatible image-generation endpoint,
// downloads the rendered result, and persists it locally. An existing file
// under the same name is overwritten.
type ImageClient struct {
	client *http.Client
	apiURL string
	apiKey string
	model  string
	outDir string
	logger *slog.Logger
}

// ImageConfig carries the image-synthesis service's connection settings plus
// the local directory rendered images are persisted under.
type ImageConfig struct {
	APIURL string
	APIKey string
	Model  string
	OutDir string
}

func NewImageClient(cfg ImageConfig, logger *slog.Logger) *ImageClient {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1"
	}

	model := cfg.Model
	if model == "" {
		model = "dall-e-3"
	}

	return &ImageClient{
		client: &http.Client{Timeout: imageTimeoutSeconds * time.Second},
		apiURL: apiURL,
		apiKey: cfg.APIKey,
		model:  model,
		outDir: cfg.OutDir,
		logger: logger.With("module", "image_client"),
	}
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Render generates an image for the prompt and persists it as
// <outDir>/<name>.png, overwriting any prior file of that name.
func (c *ImageClient) Render(ctx context.Context, prompt, name string) (string, error) {
	imageURL, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Image generated, downloading", "url", imageURL)

	img, err := c.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	path := filepath.Join(c.outDir, name+".png")

	err = persistPNG(path, img)
	if err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Image saved", "path", path)

	return path, nil
}

func (c *ImageClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(imageRequest{
		Model:          c.model,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		Quality:        "standard",
		ResponseFormat: "url",
	})
	if err != nil {
		return "", fmt.Errorf("image: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/images/generations", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("image: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		return "", fmt.Errorf("image: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var decoded imageResponse

	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return "", fmt.Errorf("image: decode response: %w", err)
	}

	if len(decoded.Data) == 0 || decoded.Data[0].URL == "" {
		return "", ErrNoImageURL
	}

	return decoded.Data[0].URL, nil
}

func (c *ImageClient) download(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image: create download request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image: download failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("image: download status %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image: decode downloaded image: %w", err)
	}

	return img, nil
}

func persistPNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("image: encode png: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}

	return nil
}
