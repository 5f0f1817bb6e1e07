package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads task and summary prompts from user-editable files on disk,
// falling back to the embedded defaults.
//
// Initialisation is lazy: the prompt directory and default files are written
// on the first Load, never in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.fincrew/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".fincrew", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// DefaultPrompt returns the embedded template for name.
func DefaultPrompt(name string) (string, bool) {
	p, ok := defaultPrompts[name]
	return p, ok
}

// PromptNames lists the embedded prompt names in sorted order.
func PromptNames() []string {
	names := make([]string, 0, len(defaultPrompts))
	for name := range defaultPrompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the prompt template for the given name.
// A file on disk wins over the embedded default; unknown names are an error.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	prompt, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return prompt, nil
	}

	prompt, err := s.loadFromFile(name)
	if err != nil {
		if def, ok := defaultPrompts[name]; ok {
			return def, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, domain.ErrNotFound)
	}

	// Keep whichever value a concurrent Load cached first.
	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Existing files are user edits and are never overwritten.
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	var files strings.Builder
	for _, name := range PromptNames() {
		files.WriteString("- `" + name + ".txt`\n")
	}

	content := `# fincrew prompts

Each file is the template for one crew task or for the summary command.
Task descriptions are named after the task; expected outputs add the
` + "`_expected`" + ` suffix.

## Files

` + files.String() + `
## Placeholders

Task prompts may use ` + "`{query}`" + ` and ` + "`{file_path}`" + `, replaced
before the prompt is sent. ` + "`summarise.txt`" + ` takes two Go ` + "`%s`" + `
verbs: the instruction, then the document text.

Edits take effect on the next command.
`
	return os.WriteFile(path, []byte(content), 0600)
}
