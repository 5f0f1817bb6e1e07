package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(nested)
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	assert.Equal(t, filepath.Join(nested, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("postprocess.truncate.max_chars", 2000))
	require.NoError(t, store.Set("verbose", true))
	require.NoError(t, store.Set("crew.tasks", []string{"verification"}))

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, 2000, store.GetInt("postprocess.truncate.max_chars"))
	assert.True(t, store.GetBool("verbose"))
	assert.Equal(t, []string{"verification"}, store.GetStringSlice("crew.tasks"))

	// Wrong types and missing keys read as zero values.
	assert.Empty(t, store.GetString("postprocess.truncate.max_chars"))
	assert.Zero(t, store.GetInt("llm.provider"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("llm.provider"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "anthropic"))
	require.NoError(t, store.Set("llm.model", "claude-3-5-sonnet-latest"))
	require.NoError(t, store.Set("postprocess.pipeline", []string{"collapse_spaces", "truncate"}))
	require.NoError(t, store.Set("postprocess.truncate.max_chars", 1000))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[llm]")
	assert.Contains(t, string(raw), "[postprocess.truncate]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", reloaded.GetString("llm.provider"))
	assert.Equal(t, "claude-3-5-sonnet-latest", reloaded.GetString("llm.model"))
	assert.Equal(t, []string{"collapse_spaces", "truncate"}, reloaded.GetStringSlice("postprocess.pipeline"))
	assert.Equal(t, 1000, reloaded.GetInt("postprocess.truncate.max_chars"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[ingest]
default_path = "reports/q3.pdf"
normalise = "document"

[postprocess]
pipeline = ["truncate"]

[postprocess.truncate]
max_chars = 500
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "reports/q3.pdf", store.GetString("ingest.default_path"))
	assert.Equal(t, "document", store.GetString("ingest.normalise"))
	assert.Equal(t, map[string]any{"max_chars": int64(500)}, store.GetSection("postprocess.truncate"))
}

func TestConfigStore_GetSection(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("postprocess.truncate.max_chars", 10))
	require.NoError(t, store.Set("postprocess.truncated", "other"))

	assert.Equal(t, map[string]any{"max_chars": 10}, store.GetSection("postprocess.truncate"))
	assert.Equal(t, map[string]any{"max_chars": 10}, store.GetSection("postprocess.truncate."))
	assert.Empty(t, store.GetSection("nothing"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# comment\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "fake"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_WriteError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("a", "b"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Save())
}

func TestUnflattenMap(t *testing.T) {
	got := unflattenMap(map[string]any{
		"llm.provider":                   "fake",
		"postprocess.pipeline":           []string{"truncate"},
		"postprocess.truncate.max_chars": 5,
		"top":                            1,
		"top.child":                      2,
	})

	assert.Equal(t, map[string]any{
		"llm": map[string]any{"provider": "fake"},
		"postprocess": map[string]any{
			"pipeline": []string{"truncate"},
			"truncate": map[string]any{"max_chars": 5},
		},
		"top": 1,
	}, got)

	assert.Equal(t, map[string]any{"a.b": 1}, flattenMap(map[string]any{"a": map[string]any{"b": 1}}, ""))
}
