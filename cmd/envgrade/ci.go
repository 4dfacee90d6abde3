package envgrade

import (
	"fmt"
	"os"

	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/report"
	"github.com/envgrade/envgrade/internal/scan"
	"github.com/envgrade/envgrade/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagFailGrade string
	flagMarkdown  bool
	flagCIStrict  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "ci [path]",
		Short: "Scan for CI: fail the job when the grade is worse than --fail-grade",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCI,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagFailGrade, "fail-grade", "", "fail when the grade is worse than this letter (A<B<C<D<F, default D)")
	cmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "emit a markdown findings table for a PR comment")
	cmd.Flags().BoolVar(&flagCIStrict, "strict", false, "use the steeper token/JWT penalty weighting")
}

func runCI(_ *cobra.Command, args []string) error {
	path := ".env.example"
	if len(args) == 1 {
		path = args[0]
	}
	text, name, err := readInput(path)
	if err != nil {
		return reportError(err)
	}
	lcfg, gcfg := loadConfigs(".")
	w := resolveWeighting(flagCIStrict, lcfg, gcfg)
	failGrade := pickString(flagFailGrade, lcfg.FailGrade, gcfg.FailGrade)
	if failGrade == "" {
		failGrade = "D"
	}

	findings, capped := scan.KeyValue(text)
	types.SortFindings(findings)
	g := grade.Grade(findings, w)

	switch {
	case flagJSON:
		if err := marshalResult(&types.ScanResult{Findings: findings, Counts: types.Count(findings), Grade: g, Capped: capped}); err != nil {
			return err
		}
	case flagMarkdown:
		report.WriteMarkdown(os.Stdout, findings, g)
	default:
		opts := report.PrintOptions{NoColor: colorDisabled(), Quiet: flagQuiet, Capped: capped}
		report.PrintFindings(os.Stdout, findings, opts)
		report.PrintGrade(os.Stdout, g, opts)
	}

	if grade.Worse(g.Letter, failGrade) {
		if !flagJSON && !flagMarkdown {
			fmt.Fprintf(os.Stderr, "grade %s is worse than fail grade %s (%s)\n", g.Letter, failGrade, name)
		}
		return errGradeFail
	}
	return nil
}
