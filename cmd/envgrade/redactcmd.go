package envgrade

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/envgrade/envgrade/internal/engine"
	"github.com/envgrade/envgrade/internal/redact"
	"github.com/envgrade/envgrade/internal/scan"
	"github.com/envgrade/envgrade/internal/types"
	"github.com/spf13/cobra"
)

var flagCopy bool

func init() {
	cmd := &cobra.Command{
		Use:   "redact [path]",
		Short: "Print a redacted copy of the input with secret values masked",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRedact,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the redacted text to the clipboard instead of printing it")
}

func runRedact(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	text, name, err := readInput(path)
	if err != nil {
		return reportError(err)
	}

	var findings []types.Finding
	if path == "" || engine.IsKeyValuePath(path) {
		findings, _ = scan.KeyValue(text)
	} else {
		findings, _ = scan.FreeTextFindings(text)
	}
	out := redact.Redact(text, findings)

	if flagCopy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "redacted copy of %s placed on clipboard\n", name)
		}
		return nil
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}
