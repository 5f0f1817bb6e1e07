package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var summarisePrompt string

var summariseCmd = &cobra.Command{
	Use:     "summarise [path]",
	Aliases: []string{"summarize"},
	Short:   "Summarise a financial PDF in one model call",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSummarise,
}

func init() {
	summariseCmd.Flags().StringVarP(&summarisePrompt, "prompt", "p", "", "what the summary should focus on")
	rootCmd.AddCommand(summariseCmd)
}

func runSummarise(cmd *cobra.Command, args []string) error {
	if crewService == nil {
		return errNotConfigured("crew")
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	summary, err := crewService.Summarise(cmd.Context(), path, summarisePrompt)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(summary))
	return nil
}
