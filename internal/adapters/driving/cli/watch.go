package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fincrew/internal/adapters/driven/watch"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

var (
	watchQuery    string
	watchTasks    []string
	watchPattern  string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Analyse every PDF dropped into a directory",
	Long: `Watches a directory (not recursively) and runs the crew over every PDF
that is created or rewritten in it. Writes are debounced so a file is only
analysed once it has stopped changing.

Runs are recorded as with 'fincrew analyze'. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchQuery, "query", "q", defaultQuery, "question to answer about each document")
	watchCmd.Flags().StringSliceVarP(&watchTasks, "task", "t", nil, "task ID to run (repeatable, default all)")
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*.pdf", "file name glob to react to")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before a file is analysed")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if crewService == nil {
		return errNotConfigured("crew")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(args[0], watch.WithPattern(watchPattern), watch.WithDebounce(watchDebounce))
	defer w.Close()

	files, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for %s (Ctrl-C to stop)\n", args[0], watchPattern)

	for path := range files {
		analyseWatched(ctx, cmd, path)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// analyseWatched runs the crew over one file. Failures are reported and
// the watch continues.
func analyseWatched(ctx context.Context, cmd *cobra.Command, path string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading(out, "==> "+path))

	run, err := crewService.Kickoff(ctx, driving.CrewRequest{
		Path:    path,
		Query:   watchQuery,
		TaskIDs: watchTasks,
	})
	if err != nil {
		cmd.PrintErrln(styled(cmd.ErrOrStderr(), errorStyle, fmt.Sprintf("%s: %v", path, err)))
		return
	}

	printRunOutputs(cmd, run)
	fmt.Fprintf(out, "%s %s\n\n", label(out, "Run"), run.ID)
}
