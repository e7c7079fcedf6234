package creative_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush19353/geopulse-ai-app/pkg/creative"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer

	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestRenderGeneratesDownloadsAndPersists(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()

	var mux http.ServeMux

	server := httptest.NewServer(&mux)
	defer server.Close()

	mux.HandleFunc("/images/generations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer img-key", r.Header.Get("Authorization"))

		var req map[string]any

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dall-e-3", req["model"])
		assert.Equal(t, "A cozy indoor dinner scene", req["prompt"])
		assert.Equal(t, "url", req["response_format"])

		payload := map[string]any{"data": []map[string]string{{"url": server.URL + "/renders/out.png"}}}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("/renders/out.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(testPNG(t))
	})

	client := creative.NewImageClient(creative.ImageConfig{
		APIURL: server.URL,
		APIKey: "img-key",
		OutDir: outDir,
	}, slog.Default())

	path, err := client.Render(context.Background(), "A cozy indoor dinner scene", "geopulse_s1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "geopulse_s1.png"), path)

	persisted, err := os.ReadFile(path)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(persisted))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())
}

func TestRenderOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	target := filepath.Join(outDir, "geopulse_s1.png")

	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	var mux http.ServeMux

	server := httptest.NewServer(&mux)
	defer server.Close()

	mux.HandleFunc("/images/generations", func(w http.ResponseWriter, _ *http.Request) {
		payload := map[string]any{"data": []map[string]string{{"url": server.URL + "/renders/out.png"}}}
		_ = json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("/renders/out.png", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(testPNG(t))
	})

	client := creative.NewImageClient(creative.ImageConfig{APIURL: server.URL, OutDir: outDir}, slog.Default())

	_, err := client.Render(context.Background(), "prompt", "geopulse_s1")
	require.NoError(t, err)

	persisted, err := os.ReadFile(target)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(persisted))
	require.NoError(t, err, "stale content should have been replaced by a valid image")
}

func TestRenderNoImageURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]string{}})
	}))
	defer server.Close()

	client := creative.NewImageClient(creative.ImageConfig{APIURL: server.URL, OutDir: t.TempDir()}, slog.Default())

	_, err := client.Render(context.Background(), "prompt", "geopulse_s1")
	require.ErrorIs(t, err, creative.ErrNoImageURL)
}

func TestRenderGenerationStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"content policy violation"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := creative.NewImageClient(creative.ImageConfig{APIURL: server.URL, OutDir: t.TempDir()}, slog.Default())

	_, err := client.Render(context.Background(), "prompt", "geopulse_s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content policy violation")
}
