package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// defaultQuery is used when no query is given.
const defaultQuery = "Analyze this financial document for investment insights"

var (
	analyzeQuery string
	analyzeTasks []string
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Run the analysis crew over a financial PDF",
	Long: `Reads the PDF and runs the crew's tasks in order. Each task is handled by
its agent, which sees the task description, the expected output, the report
text and, for agents with memory, the answers to earlier tasks.

Tasks (default order):
  analyze_financial_document
  investment_analysis
  risk_assessment
  verification

Use --task to select and order tasks. The run is recorded and can be
viewed later with 'fincrew runs'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var crewCmd = &cobra.Command{
	Use:   "crew",
	Short: "List the crew's agents and tasks",
	RunE:  runCrew,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeQuery, "query", "q", defaultQuery, "question to answer about the document")
	analyzeCmd.Flags().StringSliceVarP(&analyzeTasks, "task", "t", nil, "task ID to run (repeatable, default all)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the run as JSON")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(crewCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if crewService == nil {
		return errNotConfigured("crew")
	}

	req := driving.CrewRequest{
		Query:   strings.TrimSpace(analyzeQuery),
		TaskIDs: analyzeTasks,
	}
	if len(args) > 0 {
		req.Path = args[0]
	}
	if req.Query == "" {
		req.Query = defaultQuery
	}

	run, err := crewService.Kickoff(cmd.Context(), req)
	if err != nil {
		var readErr *domain.DocumentReadError
		if errors.As(err, &readErr) {
			return err
		}
		if run != nil && len(run.Outputs) > 0 && !analyzeJSON {
			printRunOutputs(cmd, run)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return printJSON(cmd, newRunJSON(run))
	}

	printRunOutputs(cmd, run)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d tasks, %s)\n",
		label(cmd.OutOrStdout(), "Run"), run.ID, len(run.Outputs), run.Duration().Round(time.Millisecond))
	return nil
}

func printRunOutputs(cmd *cobra.Command, run *domain.AnalysisRun) {
	out := cmd.OutOrStdout()
	for _, o := range run.Outputs {
		fmt.Fprintln(out, heading(out, "## "+o.TaskID)+" "+label(out, "("+o.AgentID+")"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimSpace(o.Output))
		fmt.Fprintln(out)
	}
}

func runCrew(cmd *cobra.Command, _ []string) error {
	if crewService == nil {
		return errNotConfigured("crew")
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, heading(out, "Agents"))
	for _, a := range crewService.Agents() {
		fmt.Fprintf(out, "  %s\n", a.ID)
		fmt.Fprintf(out, "    Role:     %s\n", a.Role)
		fmt.Fprintf(out, "    Max iter: %d, max rpm: %d, memory: %t\n", a.Attempts(), a.MaxRPM, a.Memory)
		if len(a.Tools) > 0 {
			fmt.Fprintf(out, "    Tools:    %s\n", strings.Join(a.Tools, ", "))
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading(out, "Tasks"))
	for i, t := range crewService.Tasks() {
		fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, t.ID, t.AgentID)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
