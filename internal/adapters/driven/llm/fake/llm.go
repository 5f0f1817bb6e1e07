// Package fake provides an offline LLM service that replays canned responses.
//
// Responses are returned in order and wrap around once exhausted, so a crew
// run of any length always gets an answer. It is the default provider and
// needs no network or API key.
package fake

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// ModelName is reported by ModelName.
const ModelName = "fake-list"

// MaxRecordedCalls bounds the call history kept by Calls.
const MaxRecordedCalls = 100

// Call records one request made to the fake.
type Call struct {
	Method   string
	Messages []driven.ChatMessage
}

// LLMService replays canned responses.
type LLMService struct {
	mu        sync.Mutex
	responses []string
	next      int
	calls     []Call
}

// NewLLMService creates a fake with the given responses, or the built-in
// financial analyses when none are given.
func NewLLMService(responses ...string) *LLMService {
	if len(responses) == 0 {
		responses = DefaultResponses()
	}
	return &LLMService{responses: append([]string(nil), responses...)}
}

// Generate returns the next canned response.
func (s *LLMService) Generate(ctx context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	return s.respond(ctx, Call{
		Method:   "generate",
		Messages: []driven.ChatMessage{{Role: driven.RoleUser, Content: prompt}},
	})
}

// Chat returns the next canned response.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return s.respond(ctx, Call{
		Method:   "chat",
		Messages: append([]driven.ChatMessage(nil), messages...),
	})
}

// Summarise returns the next canned response.
func (s *LLMService) Summarise(ctx context.Context, prompt, documentText string) (string, error) {
	out, err := s.respond(ctx, Call{
		Method: "summarise",
		Messages: []driven.ChatMessage{
			{Role: driven.RoleUser, Content: prompt + "\n\n" + documentText},
		},
	})
	return strings.TrimSpace(out), err
}

// Calls returns a copy of the most recent requests, oldest first.
// At most MaxRecordedCalls are kept.
func (s *LLMService) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// ModelName returns "fake-list".
func (s *LLMService) ModelName() string {
	return ModelName
}

// Ping always succeeds.
func (s *LLMService) Ping(context.Context) error {
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

func (s *LLMService) respond(ctx context.Context, call Call) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.calls) == MaxRecordedCalls {
		copy(s.calls, s.calls[1:])
		s.calls = s.calls[:len(s.calls)-1]
	}
	s.calls = append(s.calls, call)
	out := s.responses[s.next]
	s.next = (s.next + 1) % len(s.responses)
	return out, nil
}
