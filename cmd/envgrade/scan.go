package envgrade

import (
	"fmt"
	"os"
	"time"

	"github.com/envgrade/envgrade/internal/engine"
	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/redact"
	"github.com/envgrade/envgrade/internal/report"
	"github.com/envgrade/envgrade/internal/scan"
	"github.com/envgrade/envgrade/internal/tui"
	"github.com/envgrade/envgrade/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagKeyValue    bool
	flagStrict      bool
	flagSARIF       bool
	flagRedact      bool
	flagInteractive bool
	flagInclude     string
	flagExclude     string
	flagMaxBytes    int64
	flagNoCache     bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a file, directory, or stdin for secrets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagKeyValue, "keyvalue", false, "force KEY=VALUE structural analysis (auto for .env-style files)")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "use the steeper token/JWT penalty weighting")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	cmd.Flags().BoolVar(&flagRedact, "redact", false, "print the redacted input after the report")
	cmd.Flags().BoolVar(&flagInteractive, "interactive", false, "browse findings in an interactive TUI")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs (directory mode)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs (directory mode)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this in directory mode (default 1MiB)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable the incremental scan cache")
}

func runScan(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if path != "" {
		if st, err := os.Stat(path); err != nil {
			return reportError(err)
		} else if st.IsDir() {
			return runScanDir(path)
		}
	}
	return runScanBuffer(path)
}

func runScanBuffer(path string) error {
	text, name, err := readInput(path)
	if err != nil {
		return reportError(err)
	}
	lcfg, gcfg := loadConfigs(".")
	w := resolveWeighting(flagStrict, lcfg, gcfg)

	var res *types.ScanResult
	if flagKeyValue || (path != "" && engine.IsKeyValuePath(path)) {
		res = keyValueResult(text, w)
	} else {
		res = scan.FreeText(text)
		if res != nil && w != grade.Light {
			res.Grade = grade.Grade(res.Findings, w)
		}
	}
	if res == nil {
		res = &types.ScanResult{Findings: []types.Finding{}, Grade: grade.Grade(nil, w)}
	}

	if flagInteractive {
		return tui.Run(res, text)
	}
	return renderResult(res, name)
}

// keyValueResult assembles a full ScanResult from the structural pass so
// both modes render identically.
func keyValueResult(text string, w grade.Weighting) *types.ScanResult {
	started := time.Now()
	findings, capped := scan.KeyValue(text)
	types.SortFindings(findings)
	return &types.ScanResult{
		Findings: findings,
		Counts:   types.Count(findings),
		Grade:    grade.Grade(findings, w),
		Redacted: redact.Redact(text, findings),
		Elapsed:  time.Since(started),
		Capped:   capped,
	}
}

func renderResult(res *types.ScanResult, name string) error {
	switch {
	case flagJSON:
		if err := marshalResult(res); err != nil {
			return err
		}
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, res.Findings, version, name); err != nil {
			return err
		}
	default:
		opts := report.PrintOptions{
			NoColor:  colorDisabled(),
			Quiet:    flagQuiet,
			Duration: res.Elapsed,
			Capped:   res.Capped,
		}
		report.PrintFindings(os.Stdout, res.Findings, opts)
		report.PrintGrade(os.Stdout, res.Grade, opts)
		if flagRedact {
			fmt.Println()
			fmt.Print(res.Redacted)
		}
	}
	if !grade.Passing(res.Grade.Letter) {
		return errGradeFail
	}
	return nil
}

func runScanDir(root string) error {
	lcfg, gcfg := loadConfigs(root)
	res, err := engine.Scan(engine.Config{
		Root:         root,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		NoCache:      flagNoCache || pickBool(false, lcfg.NoCache, gcfg.NoCache),
		Weighting:    resolveWeighting(flagStrict, lcfg, gcfg),
	})
	if err != nil {
		return reportError(err)
	}
	return renderResult(&types.ScanResult{
		Findings: res.Findings,
		Counts:   types.Count(res.Findings),
		Grade:    res.Grade,
		Elapsed:  res.Duration,
		Capped:   res.Capped,
	}, root)
}
