package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

var (
	runsLimit int
	runsJSON  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage recorded analysis runs",
	Long:  `List, view or delete the analysis runs recorded by 'fincrew analyze'.`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsGetCmd = &cobra.Command{
	Use:   "get [run-id]",
	Short: "Show a run and its task outputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsGet,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum number of runs (0 = all)")
	runsListCmd.Flags().BoolVar(&runsJSON, "json", false, "output runs as JSON")
	runsGetCmd.Flags().BoolVar(&runsJSON, "json", false, "output the run as JSON")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsGetCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}

// runJSON is the JSON shape of a run.
type runJSON struct {
	ID          string           `json:"id"`
	Path        string           `json:"path"`
	Query       string           `json:"query"`
	Status      string           `json:"status"`
	Error       string           `json:"error,omitempty"`
	Pages       int              `json:"pages"`
	ReportChars int              `json:"report_chars"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
	Outputs     []taskOutputJSON `json:"outputs"`
}

type taskOutputJSON struct {
	Task     string `json:"task"`
	Agent    string `json:"agent"`
	Output   string `json:"output"`
	Attempts int    `json:"attempts"`
}

func newRunJSON(run *domain.AnalysisRun) runJSON {
	r := runJSON{
		ID:          run.ID,
		Path:        run.FilePath,
		Query:       run.Query,
		Status:      string(run.Status),
		Error:       run.Error,
		Pages:       run.Pages,
		ReportChars: run.ReportChars,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
		Outputs:     make([]taskOutputJSON, len(run.Outputs)),
	}
	for i, o := range run.Outputs {
		r.Outputs[i] = taskOutputJSON{Task: o.TaskID, Agent: o.AgentID, Output: o.Output, Attempts: o.Attempts}
	}
	return r
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errNotConfigured("run")
	}

	runs, err := runService.List(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}

	if runsJSON {
		out := make([]runJSON, len(runs))
		for i := range runs {
			out[i] = newRunJSON(&runs[i])
		}
		return printJSON(cmd, out)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := cmd.OutOrStdout()
	for i := range runs {
		r := &runs[i]
		fmt.Fprintf(w, "  %s  %s  %s\n", r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), statusText(w, string(r.Status)))
		fmt.Fprintf(w, "    %s %s\n", label(w, "Path: "), r.FilePath)
		if r.Query != "" {
			fmt.Fprintf(w, "    %s %s\n", label(w, "Query:"), r.Query)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %d runs\n", len(runs))
	return nil
}

func runRunsGet(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errNotConfigured("run")
	}

	run, err := runService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if runsJSON {
		return printJSON(cmd, newRunJSON(run))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, heading(w, "Run "+run.ID))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Status:   %s\n", statusText(w, string(run.Status)))
	fmt.Fprintf(w, "  Path:     %s\n", run.FilePath)
	fmt.Fprintf(w, "  Query:    %s\n", run.Query)
	fmt.Fprintf(w, "  Pages:    %d\n", run.Pages)
	fmt.Fprintf(w, "  Started:  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Duration: %s\n", run.Duration().Round(time.Millisecond))
	if run.Error != "" {
		fmt.Fprintf(w, "  Error:    %s\n", run.Error)
	}
	fmt.Fprintln(w)

	for _, o := range run.Outputs {
		fmt.Fprintln(w, heading(w, "## "+o.TaskID)+" "+label(w, "("+o.AgentID+")"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.TrimSpace(o.Output))
		fmt.Fprintln(w)
	}
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	if runService == nil {
		return errNotConfigured("run")
	}

	if err := runService.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Run %s deleted.\n", args[0])
	return nil
}
