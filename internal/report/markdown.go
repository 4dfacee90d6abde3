package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/envgrade/envgrade/internal/types"
)

// WriteMarkdown renders findings as a GitHub-flavored markdown table for the
// CI pull-request comment path.
func WriteMarkdown(w io.Writer, findings []types.Finding, g types.GradeResult) {
	fmt.Fprintf(w, "### envgrade: grade %s (%d/100)\n\n", g.Letter, g.Score)
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found. ✅")
		return
	}
	fmt.Fprintln(w, "| Severity | Finding | Location | Match |")
	fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for _, f := range findings {
		loc := fmt.Sprintf("line %d", f.Line)
		if f.Path != "" {
			loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
		}
		fmt.Fprintf(w, "| %s | %s | %s | `%s` |\n",
			f.Severity, escapePipes(f.Name), escapePipes(loc), escapePipes(maskValue(f.DisplayMatch())))
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
