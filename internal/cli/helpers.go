package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/daftar/internal/roster"
)

func printEntries(cmd *cobra.Command, title string, entries []roster.Entry, empty string) {
	out := cmd.OutOrStdout()
	if title != "" {
		fmt.Fprintln(out, title)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, entry.Name)
	}
}
