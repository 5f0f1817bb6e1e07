package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	readLegacy bool
	readStats  bool
)

var readCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Print the normalised text of a financial PDF",
	Long: `Reads every page of the PDF, collapses runs of blank lines and prints the
report text, one page after another.

Without a path the configured default (ingest.default_path) is read.

With --legacy a read failure is printed as "Error reading PDF file: <cause>"
on stdout and the command exits successfully, for callers that parse the
text output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readLegacy, "legacy", false, "print read failures as text instead of failing")
	readCmd.Flags().BoolVar(&readStats, "stats", false, "print page and byte counts instead of the text")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errNotConfigured("ingest")
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	if readLegacy {
		fmt.Fprint(cmd.OutOrStdout(), ingestService.ReadDocumentText(cmd.Context(), path))
		return nil
	}

	report, err := ingestService.ReadDocument(cmd.Context(), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if readStats {
		fmt.Fprintf(out, "%s %s\n", label(out, "Path: "), report.Path)
		fmt.Fprintf(out, "%s %d\n", label(out, "Pages:"), report.Pages)
		fmt.Fprintf(out, "%s %d\n", label(out, "Bytes:"), len(report.Text))
		return nil
	}

	fmt.Fprint(out, report.Text)
	return nil
}
