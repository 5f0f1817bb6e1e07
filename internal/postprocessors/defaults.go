package postprocessors

import (
	"fmt"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/postprocessors/truncate"
	"github.com/custodia-labs/fincrew/internal/postprocessors/whitespace"
)

// RegisterDefaults registers all built-in processors with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(whitespace.Name, buildCollapseSpaces)
	r.Register(truncate.Name, buildTruncate)
}

// DefaultRegistry returns a registry with the built-in processors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func buildCollapseSpaces(map[string]any) (driven.TextProcessor, error) {
	return whitespace.New(), nil
}

// buildTruncate creates a truncate processor from generic config.
// Supported config keys:
//   - max_chars (int): characters kept (default: 48000)
//   - marker (string): appended when text is cut (default: none)
func buildTruncate(cfg map[string]any) (driven.TextProcessor, error) {
	var opts []truncate.Option

	if val, ok := cfg["max_chars"]; ok {
		n := getIntFromConfig(cfg, "max_chars")
		if n <= 0 {
			return nil, fmt.Errorf("truncate: max_chars must be positive, got %v", val)
		}
		opts = append(opts, truncate.WithMaxChars(n))
	}
	if marker, ok := cfg["marker"].(string); ok {
		opts = append(opts, truncate.WithMarker(marker))
	}

	return truncate.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
