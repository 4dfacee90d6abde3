package envgrade

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/envgrade/envgrade/internal/patterns"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in credential patterns",
		Args:  cobra.NoArgs,
		RunE:  runPatterns,
	}
	rootCmd.AddCommand(cmd)
}

func runPatterns(_ *cobra.Command, _ []string) error {
	if flagJSON {
		return marshalPatterns()
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIER\tSEVERITY\tNAME")
	for _, p := range patterns.Specific() {
		fmt.Fprintf(tw, "specific\t%s\t%s\n", p.Severity, p.Name)
	}
	for _, p := range patterns.Fallback() {
		fmt.Fprintf(tw, "fallback\t%s\t%s\n", p.Severity, p.Name)
	}
	return tw.Flush()
}

func marshalPatterns() error {
	type entry struct {
		Name     string `json:"name"`
		Severity string `json:"severity"`
		Tier     string `json:"tier"`
	}
	var out []entry
	for _, p := range patterns.Specific() {
		out = append(out, entry{p.Name, string(p.Severity), "specific"})
	}
	for _, p := range patterns.Fallback() {
		out = append(out, entry{p.Name, string(p.Severity), "fallback"})
	}
	return writeJSON(os.Stdout, out)
}
