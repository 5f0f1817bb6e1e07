package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
	"github.com/custodia-labs/fincrew/internal/logger"
)

// Ensure CrewService implements the interface.
var _ driving.CrewService = (*CrewService)(nil)

// defaultSummaryPrompt is used by Summarise when no prompt is given.
const defaultSummaryPrompt = "Summarise the key financial metrics, trends and risks in this document."

// errEmptyResponse marks a model call that returned only whitespace.
var errEmptyResponse = errors.New("empty response")

// CrewService runs a sequence of agent tasks over an ingested document.
// Agents, tasks and rate limiters are fixed at construction, so concurrent
// kickoffs share each agent's request budget.
type CrewService struct {
	ingest   driving.IngestService
	llm      driven.LLMService
	prompts  driven.PromptStore
	runs     driven.RunStore
	pipeline driven.TextPipeline
	tools    map[string]driven.AnalysisTool

	agents     []domain.Agent
	agentsByID map[string]domain.Agent
	tasks      []domain.Task
	tasksByID  map[string]domain.Task
	limiters   map[string]*rate.Limiter

	now   func() time.Time
	newID func() string
}

// CrewOption configures the crew service.
type CrewOption func(*CrewService)

// WithRunStore records every kickoff in store.
func WithRunStore(store driven.RunStore) CrewOption {
	return func(s *CrewService) {
		s.runs = store
	}
}

// WithPipeline runs report text through pipeline before prompting.
func WithPipeline(pipeline driven.TextPipeline) CrewOption {
	return func(s *CrewService) {
		s.pipeline = pipeline
	}
}

// WithTools makes analysis tools available to agents and tasks that name them.
func WithTools(tools ...driven.AnalysisTool) CrewOption {
	return func(s *CrewService) {
		for _, t := range tools {
			s.tools[t.Name()] = t
		}
	}
}

// WithAgents replaces the default agents.
func WithAgents(agents ...domain.Agent) CrewOption {
	return func(s *CrewService) {
		s.agents = agents
	}
}

// WithTasks replaces the default task sequence.
func WithTasks(tasks ...domain.Task) CrewOption {
	return func(s *CrewService) {
		s.tasks = tasks
	}
}

// WithClock overrides the time source and ID generator. Used in tests.
func WithClock(now func() time.Time, newID func() string) CrewOption {
	return func(s *CrewService) {
		if now != nil {
			s.now = now
		}
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewCrewService creates a crew service.
func NewCrewService(
	ingest driving.IngestService,
	llm driven.LLMService,
	prompts driven.PromptStore,
	opts ...CrewOption,
) *CrewService {
	s := &CrewService{
		ingest:  ingest,
		llm:     llm,
		prompts: prompts,
		tools:   make(map[string]driven.AnalysisTool),
		agents:  domain.DefaultAgents(),
		tasks:   domain.DefaultTasks(),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}

	s.agentsByID = make(map[string]domain.Agent, len(s.agents))
	s.limiters = make(map[string]*rate.Limiter, len(s.agents))
	for _, a := range s.agents {
		s.agentsByID[a.ID] = a
		if a.MaxRPM > 0 {
			s.limiters[a.ID] = rate.NewLimiter(rate.Limit(float64(a.MaxRPM)/60.0), a.MaxRPM)
		}
	}

	s.tasksByID = make(map[string]domain.Task, len(s.tasks))
	for _, t := range s.tasks {
		s.tasksByID[t.ID] = t
	}

	return s
}

// Agents returns the configured agents.
func (s *CrewService) Agents() []domain.Agent {
	out := make([]domain.Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// Tasks returns the configured task sequence.
func (s *CrewService) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Kickoff ingests the document and runs the requested tasks in order.
//
// On failure the partially filled run is returned alongside the error and,
// when a RunStore is configured, recorded as failed. A document that cannot
// be read yields a *domain.DocumentReadError.
func (s *CrewService) Kickoff(ctx context.Context, req driving.CrewRequest) (*domain.AnalysisRun, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	tasks, err := s.resolveTasks(req.TaskIDs)
	if err != nil {
		return nil, err
	}

	run := &domain.AnalysisRun{
		ID:        s.newID(),
		FilePath:  req.Path,
		Query:     req.Query,
		StartedAt: s.now(),
	}

	logger.Section("Crew Kickoff")
	logger.Debug("Run %s: %d tasks, model %s", run.ID, len(tasks), s.llm.ModelName())

	report, err := s.ingest.ReadDocument(ctx, req.Path)
	if err != nil {
		var readErr *domain.DocumentReadError
		if errors.As(err, &readErr) && readErr.Path != "" {
			run.FilePath = readErr.Path
		}
		return s.fail(ctx, run, err)
	}
	run.FilePath = report.Path
	run.Pages = report.Pages

	text := report.Text
	if s.pipeline != nil {
		text, err = s.pipeline.Process(ctx, text)
		if err != nil {
			return s.fail(ctx, run, fmt.Errorf("postprocess report: %w", err))
		}
	}
	run.ReportChars = len(text)

	for _, task := range tasks {
		out, err := s.runTask(ctx, task, run, text)
		if err != nil {
			return s.fail(ctx, run, err)
		}
		run.Outputs = append(run.Outputs, *out)
	}

	run.Status = domain.RunSucceeded
	run.FinishedAt = s.now()
	s.record(ctx, run)

	logger.Info("Run %s complete: %d tasks in %s", run.ID, len(run.Outputs), run.Duration())
	return run, nil
}

// Summarise reads the document and asks the model to answer prompt about it.
func (s *CrewService) Summarise(ctx context.Context, path, prompt string) (string, error) {
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultSummaryPrompt
	}

	report, err := s.ingest.ReadDocument(ctx, path)
	if err != nil {
		return "", err
	}

	text := report.Text
	if s.pipeline != nil {
		if text, err = s.pipeline.Process(ctx, text); err != nil {
			return "", fmt.Errorf("postprocess report: %w", err)
		}
	}

	summary, err := s.llm.Summarise(ctx, prompt, text)
	if err != nil {
		return "", fmt.Errorf("summarise %s: %w", report.Path, err)
	}
	return summary, nil
}

// resolveTasks maps requested IDs to tasks, defaulting to the configured sequence.
func (s *CrewService) resolveTasks(ids []string) ([]domain.Task, error) {
	tasks := s.tasks
	if len(ids) > 0 {
		tasks = make([]domain.Task, 0, len(ids))
		for _, id := range ids {
			task, ok := s.tasksByID[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTask, id)
			}
			tasks = append(tasks, task)
		}
	}

	for _, task := range tasks {
		if _, ok := s.agentsByID[task.AgentID]; !ok {
			return nil, fmt.Errorf("%w: %s (task %s)", domain.ErrUnknownAgent, task.AgentID, task.ID)
		}
	}
	return tasks, nil
}

// runTask renders the task prompts and calls the model on behalf of the task's agent.
func (s *CrewService) runTask(
	ctx context.Context,
	task domain.Task,
	run *domain.AnalysisRun,
	documentText string,
) (*domain.TaskOutput, error) {
	agent := s.agentsByID[task.AgentID]
	logger.Debug("Task %s (agent %s)", task.ID, agent.ID)

	description, err := s.loadPrompt(task.DescriptionPrompt())
	if err != nil {
		return nil, err
	}
	expected, err := s.loadPrompt(task.ExpectedOutputPrompt())
	if err != nil {
		return nil, err
	}

	findings, err := s.runTools(ctx, agent, task, documentText)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", task.ID, err)
	}

	var history []domain.TaskOutput
	if agent.Memory {
		history = run.Outputs
	}

	messages := []driven.ChatMessage{
		{Role: driven.RoleSystem, Content: systemPrompt(agent, run.Query, run.FilePath)},
		{Role: driven.RoleUser, Content: taskPrompt(
			domain.RenderTemplate(description, run.Query, run.FilePath),
			domain.RenderTemplate(expected, run.Query, run.FilePath),
			run.FilePath, documentText, findings, history,
		)},
	}

	output, attempts, err := s.callAgent(ctx, agent, messages)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", task.ID, err)
	}

	return &domain.TaskOutput{
		TaskID:   task.ID,
		AgentID:  agent.ID,
		Output:   output,
		Attempts: attempts,
	}, nil
}

// callAgent makes up to agent.Attempts() rate-limited model calls and returns
// the first non-empty response.
func (s *CrewService) callAgent(
	ctx context.Context,
	agent domain.Agent,
	messages []driven.ChatMessage,
) (string, int, error) {
	limiter := s.limiters[agent.ID]
	maxAttempts := agent.Attempts()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return "", attempt - 1, fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
			}
		}

		out, err := s.llm.Chat(ctx, messages, driven.ChatOptions{})
		if err == nil && strings.TrimSpace(out) != "" {
			return out, attempt, nil
		}
		if err == nil {
			err = errEmptyResponse
		}
		lastErr = err
		logger.Debug("Agent %s attempt %d/%d failed: %v", agent.ID, attempt, maxAttempts, err)

		if ctx.Err() != nil {
			return "", attempt, ctx.Err()
		}
	}

	return "", maxAttempts, fmt.Errorf("%w after %d attempts: %w", domain.ErrTaskFailed, maxAttempts, lastErr)
}

// runTools runs every tool named by the agent or task, skipping unknown names.
func (s *CrewService) runTools(
	ctx context.Context,
	agent domain.Agent,
	task domain.Task,
	documentText string,
) ([]domain.Findings, error) {
	names := append(append([]string{}, agent.Tools...), task.Tools...)
	seen := make(map[string]bool, len(names))

	var findings []domain.Findings
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		tool, ok := s.tools[name]
		if !ok {
			logger.Debug("Tool %s not registered, skipping", name)
			continue
		}

		f, err := tool.Analyse(ctx, documentText)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", name, err)
		}
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings, nil
}

func (s *CrewService) loadPrompt(name string) (string, error) {
	if s.prompts == nil {
		return "", fmt.Errorf("load prompt %q: %w", name, domain.ErrNotFound)
	}
	return s.prompts.Load(name)
}

// fail marks run as failed, records it and returns it with err.
func (s *CrewService) fail(ctx context.Context, run *domain.AnalysisRun, err error) (*domain.AnalysisRun, error) {
	run.Status = domain.RunFailed
	run.Error = err.Error()
	run.FinishedAt = s.now()
	s.record(ctx, run)

	logger.Warn("Run %s failed: %v", run.ID, err)
	return run, err
}

func (s *CrewService) record(ctx context.Context, run *domain.AnalysisRun) {
	if s.runs == nil {
		return
	}
	// Recording must not be skipped because the caller's context was cancelled.
	if err := s.runs.Save(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("Recording run %s: %v", run.ID, err)
	}
}

// systemPrompt describes the agent persona.
func systemPrompt(agent domain.Agent, query, filePath string) string {
	return fmt.Sprintf("You are %s. %s\nYour personal goal is: %s",
		agent.Role, agent.Backstory, domain.RenderTemplate(agent.Goal, query, filePath))
}

// taskPrompt assembles the user message for one task.
func taskPrompt(
	description, expected, filePath, documentText string,
	findings []domain.Findings,
	history []domain.TaskOutput,
) string {
	var b strings.Builder

	b.WriteString(description)
	b.WriteString("\n\nThis is the expected criteria for your final answer:\n")
	b.WriteString(expected)

	fmt.Fprintf(&b, "\n\nFinancial document (%s):\n", filePath)
	b.WriteString(documentText)

	if len(findings) > 0 {
		b.WriteString("\n\nTool findings:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "- %s (%s): %s\n", f.Tool, f.Status, f.Summary)
			for _, item := range f.Items {
				fmt.Fprintf(&b, "  - %s\n", item)
			}
		}
	}

	if len(history) > 0 {
		b.WriteString("\n\nThis is the context you're working with:\n")
		for _, h := range history {
			fmt.Fprintf(&b, "### %s\n%s\n", h.TaskID, h.Output)
		}
	}

	return b.String()
}
