package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))

		var req GeminiChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		res := GeminiChatResponse{
			Candidates: []*GeminiChatCandidate{
				{
					Content: &GeminiChatContent{
						Parts: []*GeminiChatParts{{Text: reply}},
						Role:  ChatMessageRoleModel,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}))
}

func TestChatSessionSend(t *testing.T) {
	srv := newTestServer(t, "model reply", http.StatusOK)
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	session := NewChatSession(client, []*ChatHistory{
		{Chat: "system context", Role: ChatMessageRoleUser},
		{Chat: "acknowledged", Role: ChatMessageRoleModel},
	})

	reply, err := session.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "model reply", reply)

	history := session.History()
	require.Len(t, history, 4)
	assert.Equal(t, "hello", history[2].Chat)
	assert.Equal(t, ChatMessageRoleUser, history[2].Role)
	assert.Equal(t, "model reply", history[3].Chat)
	assert.Equal(t, ChatMessageRoleModel, history[3].Role)
}

func TestChatSessionSendRollsBackOnError(t *testing.T) {
	srv := newTestServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	session := NewChatSession(client, nil)

	_, err := session.Send(context.Background(), "hello")
	require.Error(t, err)

	// The failed user turn must not linger, or a retry would duplicate it.
	assert.Empty(t, session.History())
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClientWithEndpoint("test-key", srv.URL)
	_, err := client.Generate(context.Background(), []*ChatHistory{
		{Chat: "hi", Role: ChatMessageRoleUser},
	})
	assert.Error(t, err)
}
