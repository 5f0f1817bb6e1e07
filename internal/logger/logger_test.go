package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{name: "debug", log: func() { Debug("read %d pages", 3) }, want: "[DEBUG] read 3 pages\n"},
		{name: "info", log: func() { Info("run %s", "abc") }, want: "[INFO] run abc\n"},
		{name: "warn", log: func() { Warn("close failed: %v", "eof") }, want: "[WARN] close failed: eof\n"},
		{name: "section", log: func() { Section("Crew") }, want: "\n=== Crew ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")
	Timer("x")()

	assert.Zero(t, buf.Len())
}

func TestTimer(t *testing.T) {
	buf := capture(t, true)

	Timer("read document")()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[DEBUG] read document took "), out)
}

func TestFormatVerbsInSection(t *testing.T) {
	buf := capture(t, true)

	Section("100% done")

	assert.Equal(t, "\n=== 100% done ===\n", buf.String())
}
