package publisher_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/publisher"
)

type stubDestination struct {
	name    string
	outcome models.PublishOutcome
	calls   int
}

func (s *stubDestination) Name() string {
	return s.name
}

func (s *stubDestination) Publish(_ context.Context, _ publisher.Post) models.PublishOutcome {
	s.calls++

	return s.outcome
}

func writeTestImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "geopulse_test.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	return path
}

func TestCaptionAppendsHashtagLine(t *testing.T) {
	t.Parallel()

	post := publisher.Post{
		Text:     "Hazy outside? Stay in, we deliver.",
		Hashtags: []string{"#Zomato", "#CozyNights"},
	}

	assert.Equal(t, "Hazy outside? Stay in, we deliver.\n\n#Zomato #CozyNights", post.Caption())
	assert.Equal(t, "bare text", publisher.Post{Text: "bare text"}.Caption())
}

func TestPublishAllContinuesPastFailures(t *testing.T) {
	t.Parallel()

	failing := &stubDestination{
		name:    "telegram",
		outcome: models.PublishOutcome{Destination: "telegram", OK: false, Detail: "status 401: unauthorized"},
	}
	succeeding := &stubDestination{
		name:    "discord",
		outcome: models.PublishOutcome{Destination: "discord", OK: true, Detail: "Success"},
	}

	outcomes := publisher.New(slog.Default(), failing, succeeding).
		PublishAll(context.Background(), publisher.Post{Text: "hello"})

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].OK)
	assert.True(t, outcomes[1].OK)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, succeeding.calls, "failure of one destination must not skip the next")
}

func TestTelegramPublishSendsPhotoMultipart(t *testing.T) {
	t.Parallel()

	imagePath := writeTestImage(t)

	var (
		gotPath    string
		gotChatID  string
		gotCaption string
		gotPhoto   []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotChatID = r.FormValue("chat_id")
		gotCaption = r.FormValue("caption")
		assert.Equal(t, "Markdown", r.FormValue("parse_mode"))

		photo, _, err := r.FormFile("photo")
		require.NoError(t, err)
		defer func() {
			_ = photo.Close()
		}()

		buf := make([]byte, 32)
		n, _ := photo.Read(buf)
		gotPhoto = buf[:n]

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	destination := publisher.NewTelegram(server.URL, "bot-token", "-100123")

	post := publisher.Post{
		Text:      "Big match tonight!",
		Hashtags:  []string{"#Cricket"},
		ImagePath: imagePath,
	}

	outcome := destination.Publish(context.Background(), post)
	require.True(t, outcome.OK, outcome.Detail)
	assert.Equal(t, "telegram", outcome.Destination)
	assert.Equal(t, "Success", outcome.Detail)
	assert.Equal(t, "/botbot-token/sendPhoto", gotPath)
	assert.Equal(t, "-100123", gotChatID)
	assert.Equal(t, "Big match tonight!\n\n#Cricket", gotCaption)
	assert.Equal(t, []byte("png-bytes"), gotPhoto)
}

func TestTelegramPublishReportsAPIFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ok":false,"description":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	destination := publisher.NewTelegram(server.URL, "bad-token", "-100123")

	outcome := destination.Publish(context.Background(), publisher.Post{ImagePath: writeTestImage(t)})
	assert.False(t, outcome.OK)
	assert.Contains(t, outcome.Detail, "status 401")
	assert.Contains(t, outcome.Detail, "Unauthorized")
}

func TestTelegramPublishMissingImage(t *testing.T) {
	t.Parallel()

	destination := publisher.NewTelegram("http://localhost:1", "token", "chat")

	outcome := destination.Publish(context.Background(), publisher.Post{ImagePath: "/does/not/exist.png"})
	assert.False(t, outcome.OK)
	assert.Contains(t, outcome.Detail, "failed to open image")
}

func TestDiscordPublishSendsWebhookMultipart(t *testing.T) {
	t.Parallel()

	imagePath := writeTestImage(t)

	var (
		gotPayload  string
		gotFilename string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotPayload = r.FormValue("payload_json")

		file, header, err := r.FormFile("file1")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()

		gotFilename = header.Filename
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	destination := publisher.NewDiscord(server.URL)

	post := publisher.Post{
		Text:      "Big match tonight!",
		Hashtags:  []string{"#Cricket", "#Delhi"},
		ImagePath: imagePath,
	}

	outcome := destination.Publish(context.Background(), post)
	require.True(t, outcome.OK, outcome.Detail)
	assert.Equal(t, "discord", outcome.Destination)
	assert.JSONEq(t, `{"content":"Big match tonight!\n\n#Cricket #Delhi"}`, gotPayload)
	assert.Equal(t, "geopulse_test.png", gotFilename)
}

func TestDiscordPublishReportsWebhookFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Invalid Webhook Token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	destination := publisher.NewDiscord(server.URL)

	outcome := destination.Publish(context.Background(), publisher.Post{ImagePath: writeTestImage(t)})
	assert.False(t, outcome.OK)
	assert.Contains(t, outcome.Detail, "Invalid Webhook Token")
}
