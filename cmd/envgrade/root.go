package envgrade

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagJSON    bool
	flagQuiet   bool
	flagNoColor bool

	version = "0.1.0"
)

// errSilent signals a failure that has already been reported (e.g. as a JSON
// error object); Execute exits non-zero without printing again.
var errSilent = errors.New("silent failure")

// errGradeFail signals a completed scan whose grade maps to a non-zero exit.
var errGradeFail = errors.New("grade below passing threshold")

// rootCmd is the base Cobra command for the envgrade CLI.
var rootCmd = &cobra.Command{
	Use:           "envgrade",
	Short:         "Detect and grade leaked credentials in text",
	Long:          "envgrade scans env files, logs and pasted snippets for credential-shaped strings, rates each finding, and grades the input A-F.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the envgrade CLI. It should be called by the main package.
// Exit status: 0 for grades A-C, 1 for D-F and for input errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) && !errors.Is(err, errGradeFail) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "findings only, no remediation text")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}

// colorDisabled resolves the effective color setting: explicit flag wins,
// otherwise color is off when stdout is not a terminal.
func colorDisabled() bool {
	if flagNoColor {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
