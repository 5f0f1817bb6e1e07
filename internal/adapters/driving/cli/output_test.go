package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// executeCommandStdio runs the root command with no writers set, capturing
// the process's real stdout and stderr.
func executeCommandStdio(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outR, outW, pipeErr := os.Pipe()
	require.NoError(t, pipeErr)
	errR, errW, pipeErr := os.Pipe()
	require.NoError(t, pipeErr)

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	drain := func(r *os.File, dst *bytes.Buffer) chan struct{} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = io.Copy(dst, r)
		}()
		return done
	}
	var outBuf, errBuf bytes.Buffer
	outDone := drain(outR, &outBuf)
	errDone := drain(errR, &errBuf)

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()

	outW.Close()
	errW.Close()
	<-outDone
	<-errDone
	outR.Close()
	errR.Close()
	return outBuf.String(), errBuf.String(), err
}

func TestOutput_LegacyReadErrorGoesToStdout(t *testing.T) {
	ts := setupTestServices(t)
	ts.ingest.err = &domain.DocumentReadError{
		Path: "/nope.pdf",
		Err:  errors.New("open /nope.pdf: no such file or directory"),
	}

	stdout, stderr, err := executeCommandStdio(t, "read", "--legacy", "/nope.pdf")

	require.NoError(t, err)
	assert.Equal(t, "Error reading PDF file: open /nope.pdf: no such file or directory", stdout)
	assert.Empty(t, stderr)
}

func TestOutput_ResultsGoToStdout(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		want  string
		setup func(t *testing.T, ts *testServices)
	}{
		{
			name: "read",
			args: []string{"read", "q3.pdf"},
			want: "Revenue\n",
			setup: func(_ *testing.T, ts *testServices) {
				ts.ingest.report = &domain.Report{Path: "q3.pdf", Text: "Revenue\n", Pages: 1}
			},
		},
		{
			name: "read stats",
			args: []string{"read", "--stats", "q3.pdf"},
			want: "Pages: 1",
			setup: func(_ *testing.T, ts *testServices) {
				ts.ingest.report = &domain.Report{Path: "q3.pdf", Text: "Revenue\n", Pages: 1}
			},
		},
		{
			name: "analyze json",
			args: []string{"analyze", "--json", "q3.pdf"},
			want: `"id": "run-1"`,
			setup: func(_ *testing.T, ts *testServices) {
				ts.crew.run = sampleRun()
			},
		},
		{
			name: "analyze",
			args: []string{"analyze", "q3.pdf"},
			want: "## " + domain.TaskAnalyzeDocument,
			setup: func(_ *testing.T, ts *testServices) {
				ts.crew.run = sampleRun()
			},
		},
		{
			name: "crew",
			args: []string{"crew"},
			want: domain.AgentFinancialAnalyst,
		},
		{
			name: "runs list",
			args: []string{"runs", "list"},
			want: "run-1",
			setup: func(t *testing.T, ts *testServices) {
				require.NoError(t, ts.runs.Save(context.Background(), sampleRun()))
			},
		},
		{
			name: "version",
			args: []string{"version"},
			want: "fincrew version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServices(t)
			if tt.setup != nil {
				tt.setup(t, ts)
			}

			stdout, stderr, err := executeCommandStdio(t, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
			assert.Empty(t, stderr)
		})
	}
}
