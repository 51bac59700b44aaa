package agentmail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/pkg/agentmail"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *agentmail.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := agentmail.New(agentmail.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := agentmail.New(agentmail.Config{})
	require.ErrorIs(t, err, agentmail.ErrNoAPIKey)
}

func TestClient_CreateInbox(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inboxes", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(agentmail.Inbox{InboxID: "fresh@agentmail.to"})
	})

	inbox, err := client.CreateInbox(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh@agentmail.to", inbox.InboxID)
}

func TestClient_SendMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inboxes/box@agentmail.to/messages/send", r.URL.Path)

		var params agentmail.SendMessageParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		require.Equal(t, "a@x.com", params.To)
		require.Equal(t, "Hi", params.Subject)

		_ = json.NewEncoder(w).Encode(agentmail.SendMessageResponse{MessageID: "msg_1"})
	})

	resp, err := client.SendMessage(context.Background(), "box@agentmail.to", agentmail.SendMessageParams{
		To: "a@x.com", Subject: "Hi", Text: "Test",
	})
	require.NoError(t, err)
	require.Equal(t, "msg_1", resp.MessageID)
}

func TestClient_SendMessage_RequiresInboxID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.SendMessage(context.Background(), "", agentmail.SendMessageParams{To: "a@x.com"})
	require.Error(t, err)
}

func TestClient_ListMessages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inboxes/box@agentmail.to/messages", r.URL.Path)
		_ = json.NewEncoder(w).Encode(agentmail.ListMessagesResponse{
			Messages: []agentmail.Message{{MessageID: "m1", Subject: "one"}, {MessageID: "m2", Subject: "two"}},
		})
	})

	msgs, err := client.ListMessages(context.Background(), "box@agentmail.to")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "two", msgs[1].Subject)
}

func TestClient_GetMessage_APIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	_, err := client.GetMessage(context.Background(), "box@agentmail.to", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}
