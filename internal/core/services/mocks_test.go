package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// mockOpener serves in-memory documents and counts opens and closes.
type mockOpener struct {
	mu      sync.Mutex
	docs    map[string][]string
	openErr map[string]error
	pageErr map[string]map[int]error
	opened  []string
	closes  int
}

func newMockOpener() *mockOpener {
	return &mockOpener{
		docs:    make(map[string][]string),
		openErr: make(map[string]error),
		pageErr: make(map[string]map[int]error),
	}
}

func (o *mockOpener) withDoc(path string, pages ...string) *mockOpener {
	o.docs[path] = pages
	return o
}

func (o *mockOpener) withPageErr(path string, page int, err error) *mockOpener {
	if o.pageErr[path] == nil {
		o.pageErr[path] = make(map[int]error)
	}
	o.pageErr[path][page] = err
	return o
}

func (o *mockOpener) Open(path string) (driven.PageSource, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, path)

	if err, ok := o.openErr[path]; ok {
		return nil, err
	}
	pages, ok := o.docs[path]
	if !ok {
		return nil, errors.New("open " + path + ": no such file or directory")
	}
	return &mockSource{opener: o, pages: pages, errs: o.pageErr[path]}, nil
}

func (o *mockOpener) openCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.opened)
}

func (o *mockOpener) closeCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closes
}

type mockSource struct {
	opener *mockOpener
	pages  []string
	errs   map[int]error
	read   []int
}

func (s *mockSource) NumPages() int { return len(s.pages) }

func (s *mockSource) PageText(i int) (string, error) {
	s.read = append(s.read, i)
	if err, ok := s.errs[i]; ok {
		return "", err
	}
	return s.pages[i-1], nil
}

func (s *mockSource) Close() error {
	s.opener.mu.Lock()
	defer s.opener.mu.Unlock()
	s.opener.closes++
	return nil
}

// mockPromptStore returns "<name>: {query} @ {file_path}" for every prompt
// unless a template is set.
type mockPromptStore struct {
	prompts map[string]string
	missing map[string]bool
}

func (p *mockPromptStore) Load(name string) (string, error) {
	if p.missing[name] {
		return "", domain.ErrNotFound
	}
	if v, ok := p.prompts[name]; ok {
		return v, nil
	}
	return name + ": {query} @ {file_path}", nil
}

func (p *mockPromptStore) Reload() {}

// scriptedLLM returns queued results in order, then "ok" forever.
type scriptedLLM struct {
	mu      sync.Mutex
	results []llmResult
	calls   [][]driven.ChatMessage
	summary []string
}

type llmResult struct {
	out string
	err error
}

func (l *scriptedLLM) Generate(ctx context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	return l.Chat(ctx, []driven.ChatMessage{{Role: driven.RoleUser, Content: prompt}}, driven.ChatOptions{})
}

func (l *scriptedLLM) Chat(ctx context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, messages)
	if len(l.results) == 0 {
		return "ok", nil
	}
	r := l.results[0]
	l.results = l.results[1:]
	return r.out, r.err
}

func (l *scriptedLLM) Summarise(_ context.Context, prompt, documentText string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.summary = append(l.summary, prompt, documentText)
	return "summary", nil
}

func (l *scriptedLLM) ModelName() string          { return "scripted" }
func (l *scriptedLLM) Ping(context.Context) error { return nil }
func (l *scriptedLLM) Close() error               { return nil }

func (l *scriptedLLM) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

// recordingPipeline records its inputs and optionally rewrites them.
type recordingPipeline struct {
	seen []string
	fn   func(string) string
}

func (p *recordingPipeline) Process(_ context.Context, text string) (string, error) {
	p.seen = append(p.seen, text)
	if p.fn != nil {
		return p.fn(text), nil
	}
	return text, nil
}

type stubTool struct {
	name  string
	calls int
}

func (t *stubTool) Name() string        { return t.name }
func (t *stubTool) Description() string { return "stub" }

func (t *stubTool) Analyse(context.Context, string) (*domain.Findings, error) {
	t.calls++
	return &domain.Findings{Tool: t.name, Status: domain.FindingsPending, Summary: t.name + " summary"}, nil
}
