package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

type stubPrompts struct {
	prompts map[string]string
}

func (p *stubPrompts) Load(name string) (string, error) {
	if v, ok := p.prompts[name]; ok {
		return v, nil
	}
	return "", assert.AnError
}

func (p *stubPrompts) Reload() {}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})

	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultLLMModel, svc.ModelName())
	assert.Equal(t, DefaultLLMTimeout, svc.client.Timeout)
	assert.NoError(t, svc.Close())
}

func TestLLMService_Chat(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(chatResponse{Message: chatMessage{Role: "assistant", Content: "Buy."}, Done: true})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL + "/", Model: "mistral"})
	out, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: "You are an analyst."},
		{Role: driven.RoleUser, Content: "Should I buy?"},
	}, driven.ChatOptions{Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, "Buy.", out)
	assert.Equal(t, "mistral", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	require.NotNil(t, got.Options)
	assert.InDelta(t, 0.2, got.Options.Temperature, 1e-9)
}

func TestLLMService_Generate_NoOptions(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "text", Done: true})
	}))
	defer server.Close()

	out, err := NewLLMService(LLMConfig{BaseURL: server.URL}).Generate(context.Background(), "hi", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "text", out)
	_, hasOptions := got["options"]
	assert.False(t, hasOptions)
}

func TestLLMService_Summarise_UsesPromptStore(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "  summary \n", Done: true})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})
	svc.SetPromptStore(&stubPrompts{prompts: map[string]string{
		driven.PromptSummarise: "Q: %s\nD: %s",
	}})

	out, err := svc.Summarise(context.Background(), "key risks?", "revenue fell")

	require.NoError(t, err)
	assert.Equal(t, "summary", out)
	assert.Equal(t, "Q: key risks?\nD: revenue fell", got.Prompt)
}

func TestLLMService_Summarise_DefaultPrompt(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "ok"})
	}))
	defer server.Close()

	_, err := NewLLMService(LLMConfig{BaseURL: server.URL}).Summarise(context.Background(), "instr", "doc")

	require.NoError(t, err)
	assert.Contains(t, got.Prompt, "instr")
	assert.Contains(t, got.Prompt, "Document:\ndoc")
}

func TestLLMService_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	_, err := svc.Chat(context.Background(), nil, driven.ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "model not found")

	err = svc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLLMService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	assert.NoError(t, NewLLMService(LLMConfig{BaseURL: server.URL}).Ping(context.Background()))
}

func TestLLMService_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewLLMService(LLMConfig{BaseURL: url}).Ping(context.Background())
	assert.Error(t, err)
}
