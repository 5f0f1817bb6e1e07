package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the analysis tools available to agents",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	if toolRegistry == nil {
		return errNotConfigured("tool")
	}

	list := toolRegistry.List()
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tools registered.")
		return nil
	}

	w := cmd.OutOrStdout()
	for _, t := range list {
		fmt.Fprintf(w, "  %s  %s\n", heading(w, t.Name()), t.Description())
	}
	return nil
}
