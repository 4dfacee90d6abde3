package envgrade

import (
	"fmt"
	"os"
	"strings"

	"github.com/envgrade/envgrade/internal/files"
	"github.com/spf13/cobra"
)

func init() {
	fix := &cobra.Command{Use: "fix", Short: "Remediation helpers for env-style files"}
	rootCmd.AddCommand(fix)

	var ignoreFile string
	ignoreCmd := &cobra.Command{
		Use:   "ignore [root]",
		Short: "Add the standard env-file entries to an ignore file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			added, err := applyEnvIgnores(root, ignoreFile)
			if err != nil {
				return reportError(err)
			}
			if !flagQuiet {
				if len(added) == 0 {
					fmt.Fprintf(os.Stderr, "%s already has the standard entries\n", ignoreFile)
				} else {
					fmt.Fprintf(os.Stderr, "added %d entries to %s\n", len(added), ignoreFile)
				}
			}
			return nil
		},
	}
	ignoreCmd.Flags().StringVar(&ignoreFile, "file", ".gitignore", "ignore file to update")
	fix.AddCommand(ignoreCmd)

	var src, dst string
	var keepValues bool
	var addIgnore bool
	dotenvCmd := &cobra.Command{
		Use:   "dotenv",
		Short: "Generate .env.example from .env with values blanked",
		RunE: func(_ *cobra.Command, _ []string) error {
			content, err := os.ReadFile(src)
			if err != nil {
				return reportError(fmt.Errorf("read %s: %w", src, err))
			}
			out := exampleFromDotenv(string(content), keepValues)
			if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
				return reportError(err)
			}
			if addIgnore {
				if _, err := applyEnvIgnores(".", ".gitignore"); err != nil {
					return reportError(err)
				}
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "wrote %s (derived from %s)\n", dst, src)
			}
			return nil
		},
	}
	dotenvCmd.Flags().StringVar(&src, "source", ".env", "dotenv file to read")
	dotenvCmd.Flags().StringVar(&dst, "dest", ".env.example", "example file to write")
	dotenvCmd.Flags().BoolVar(&keepValues, "keep-values", false, "copy values instead of blanking them")
	dotenvCmd.Flags().BoolVar(&addIgnore, "add-ignore", false, "also add the standard entries to .gitignore")
	fix.AddCommand(dotenvCmd)
}

// applyEnvIgnores appends each missing standard entry to the named ignore
// file under root and returns the entries it added.
func applyEnvIgnores(root, name string) ([]string, error) {
	var added []string
	for _, pattern := range files.DefaultEnvIgnores() {
		present, err := files.HasIgnore(root, name, pattern)
		if err != nil {
			return added, err
		}
		if present {
			continue
		}
		if err := files.AppendIgnore(root, name, pattern); err != nil {
			return added, err
		}
		added = append(added, pattern)
	}
	return added, nil
}

// exampleFromDotenv rewrites KEY=VALUE lines with the value blanked so the
// result is safe to commit. Comments and blank lines pass through; keepValues
// turns the rewrite into a plain copy.
func exampleFromDotenv(content string, keepValues bool) string {
	lines := strings.Split(content, "\n")
	for i, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "#") || !strings.Contains(ln, "=") {
			continue
		}
		if keepValues {
			continue
		}
		kv := strings.SplitN(ln, "=", 2)
		lines[i] = strings.TrimSpace(kv[0]) + "="
	}
	return strings.Join(lines, "\n")
}
