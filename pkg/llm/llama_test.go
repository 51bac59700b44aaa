package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/pkg/llm"
)

func TestNewLlamaClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := llm.NewLlamaClient(llm.Config{})
	require.ErrorIs(t, err, llm.ErrNoAPIKey)
}

func TestLlamaClient_Complete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 2)
		require.Equal(t, "system", msgs[0].(map[string]any)["role"])
		require.Equal(t, "user", msgs[1].(map[string]any)["role"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "SUBJECT: Hello\nBODY: World"}},
			},
		})
	}))
	defer srv.Close()

	client, err := llm.NewLlamaClient(llm.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "assistant role", "write something")
	require.NoError(t, err)
	require.Equal(t, "SUBJECT: Hello\nBODY: World", got)
}

func TestLlamaClient_Complete_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := llm.NewLlamaClient(llm.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "", "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestLlamaClient_Complete_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client, err := llm.NewLlamaClient(llm.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "", "prompt")
	require.Error(t, err)
}
