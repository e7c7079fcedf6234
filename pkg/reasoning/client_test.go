package reasoning_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush19353/geopulse-ai-app/pkg/reasoning"
)

func TestCompleteJSONSendsJSONModeChatRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])

		messages, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	client := reasoning.NewClient(reasoning.Config{APIURL: server.URL, APIKey: "test-key", Model: "gpt-4o"})

	raw, err := client.CompleteJSON(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestCompleteJSONRequiresModel(t *testing.T) {
	t.Parallel()

	client := reasoning.NewClient(reasoning.Config{APIURL: "http://localhost:0"})

	_, err := client.CompleteJSON(context.Background(), "s", "u")
	require.ErrorIs(t, err, reasoning.ErrModelRequired)
}

func TestCompleteJSONUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer server.Close()

	client := reasoning.NewClient(reasoning.Config{APIURL: server.URL, Model: "gpt-4o"})

	_, err := client.CompleteJSON(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteJSONEmptyChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := reasoning.NewClient(reasoning.Config{APIURL: server.URL, Model: "gpt-4o"})

	_, err := client.CompleteJSON(context.Background(), "s", "u")
	require.ErrorIs(t, err, reasoning.ErrEmptyCompletion)
}
