package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyled_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, isTerminal(&buf))
	assert.Equal(t, "Agents", heading(&buf, "Agents"))
	assert.Equal(t, "Path:", label(&buf, "Path:"))
	assert.Equal(t, "failed", statusText(&buf, "failed"))
	assert.Equal(t, "running", statusText(&buf, "running"))
}
