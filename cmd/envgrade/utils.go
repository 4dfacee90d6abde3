package envgrade

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/envgrade/envgrade/internal/config"
	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/types"
	"github.com/envgrade/envgrade/pkg/core"
)

// marshalResult writes the scan result as indented JSON to stdout.
func marshalResult(res *types.ScanResult) error {
	return core.MarshalResult(os.Stdout, res)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput returns the contents of path, or stdin when path is empty, plus
// a display name for reports.
func readInput(path string) (string, string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), "stdin", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(b), path, nil
}

// reportError surfaces an input error per the output mode: a JSON {error}
// object on stdout in --json mode, a one-line message on stderr otherwise.
// The returned error makes Execute exit 1 without double-printing.
func reportError(err error) error {
	if flagJSON {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"error": err.Error()})
		return errSilent
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return errSilent
}

// loadConfigs returns the local then global file config for root, either of
// which may be zero-valued.
func loadConfigs(root string) (config.FileConfig, config.FileConfig) {
	var lcfg, gcfg config.FileConfig
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	return lcfg, gcfg
}

// resolveWeighting picks the calibration (CLI strict flag > config) and
// applies any per-severity overrides from config.
func resolveWeighting(strictFlag bool, lcfg, gcfg config.FileConfig) grade.Weighting {
	strict := strictFlag
	if !strict {
		strict = pickBool(false, lcfg.Strict, gcfg.Strict)
	}
	w := grade.Light
	if strict {
		w = grade.Strict
	}
	for _, c := range []config.FileConfig{gcfg, lcfg} {
		if c.Weights == nil {
			continue
		}
		if c.Weights.Critical != nil {
			w.Critical = *c.Weights.Critical
		}
		if c.Weights.Warning != nil {
			w.Warning = *c.Weights.Warning
		}
		if c.Weights.Info != nil {
			w.Info = *c.Weights.Info
		}
	}
	return w
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
