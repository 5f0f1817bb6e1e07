package whitespace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "no runs", input: "a b c", want: "a b c"},
		{name: "double", input: "a  b", want: "a b"},
		{name: "long run", input: "Revenue      $25.2B", want: "Revenue $25.2B"},
		{name: "leading and trailing", input: "   x   ", want: " x "},
		{name: "only spaces", input: "    ", want: " "},
		{name: "tabs and newlines kept", input: "a\t\tb\n\n  c", want: "a\t\tb\n\n c"},
		{name: "unicode", input: "€  £", want: "€ £"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseSpaces(tt.input))
		})
	}
}

func TestProcessor(t *testing.T) {
	p := New()

	got, err := p.Process(context.Background(), "cash  flow")

	require.NoError(t, err)
	assert.Equal(t, "cash flow", got)
	assert.Equal(t, "collapse_spaces", p.Name())
}
