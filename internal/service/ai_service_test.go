package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newStubProvider returns a server speaking just enough of the
// chat-completions protocol for the client, plus a capture of the last
// request body.
func newStubProvider(t *testing.T, status int, content string) (*httptest.Server, *map[string]any) {
	t.Helper()
	captured := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "cmpl-test",
				"object": "chat.completion",
				"choices": []map[string]any{
					{
						"index":         0,
						"finish_reason": "stop",
						"message":       map[string]any{"role": "assistant", "content": content},
					},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "boom", "type": "server_error"}})
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestAssistNotConfigured(t *testing.T) {
	svc := NewAIService(AIConfig{}, zap.NewNop())

	_, err := svc.Assist(context.Background(), "plot", "ctx", "req")
	assert.ErrorIs(t, err, ErrAINotConfigured)
}

func TestAssistSuccess(t *testing.T) {
	srv, captured := newStubProvider(t, http.StatusOK, "นี่คือคำตอบ")
	svc := NewAIService(AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"}, zap.NewNop())

	content, err := svc.Assist(context.Background(), "character", "พระเอกชื่อสมชาย", "ช่วยขยายบุคลิก")
	require.NoError(t, err)
	assert.Equal(t, "นี่คือคำตอบ", content)

	// The character system prompt and the context/request pairing must
	// reach the provider.
	messages := (*captured)["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, systemPrompts["character"], system["content"])
	user := messages[1].(map[string]any)
	assert.Contains(t, user["content"], "บริบท: พระเอกชื่อสมชาย")
	assert.Contains(t, user["content"], "คำขอ: ช่วยขยายบุคลิก")
}

func TestAssistProviderFailure(t *testing.T) {
	srv, _ := newStubProvider(t, http.StatusInternalServerError, "")
	svc := NewAIService(AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"}, zap.NewNop())

	_, err := svc.Assist(context.Background(), "plot", "ctx", "req")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAINotConfigured)
}

func TestSystemPromptFor(t *testing.T) {
	for _, assistType := range []string{"character", "plot", "dialogue", "description", "continue"} {
		assert.Equal(t, systemPrompts[assistType], SystemPromptFor(assistType))
	}
	// Unknown types fall back to the generic writing assistant.
	assert.Equal(t, genericSystemPrompt, SystemPromptFor(""))
	assert.Equal(t, genericSystemPrompt, SystemPromptFor("poetry"))
}
