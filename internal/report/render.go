package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/envgrade/envgrade/internal/types"
)

// PrintOptions controls human-readable rendering.
type PrintOptions struct {
	NoColor  bool
	Quiet    bool // suppress remediation lines
	Duration time.Duration
	Capped   bool
}

// PrintFindings renders findings in the plain columnar format.
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		return
	}
	maxName := 8
	for _, f := range findings {
		if l := len(f.Name); l > maxName {
			maxName = l
		}
	}
	for _, f := range findings {
		sev := string(f.Severity)
		if !opts.NoColor {
			sev = colorSeverity(f.Severity)
		}
		loc := fmt.Sprintf("%d:%d", f.Line, f.StartColumn)
		if f.Path != "" {
			loc = fmt.Sprintf("%s:%s", f.Path, loc)
		}
		fmt.Fprintf(w, "%-8s %-*s %s  %s\n", sev, maxName, f.Name, loc, maskValue(f.DisplayMatch()))
		if !opts.Quiet && f.Remediation != "" {
			fmt.Fprintf(w, "         ↳ %s\n", f.Remediation)
		}
	}
	c := types.Count(findings)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (critical: %d, warning: %d, info: %d)\n", len(findings), c.Critical, c.Warning, c.Info)
	if opts.Capped {
		fmt.Fprintln(w, "Finding cap reached; output is truncated.")
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.3fs\n", opts.Duration.Seconds())
	}
}

var (
	gradePassStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	gradeWarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	gradeFailStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Padding(0, 1)
)

// PrintGrade renders the grade banner.
func PrintGrade(w io.Writer, g types.GradeResult, opts PrintOptions) {
	text := fmt.Sprintf("Grade %s (%d/100) — %s", g.Letter, g.Score, g.Label)
	if opts.NoColor {
		fmt.Fprintln(w, text)
		return
	}
	style := gradeFailStyle
	switch g.Letter {
	case "A", "B":
		style = gradePassStyle
	case "C":
		style = gradeWarnStyle
	}
	fmt.Fprintln(w, style.Render(text))
}

func maskValue(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "\x1b[31mcritical\x1b[0m"
	case types.SevWarning:
		return "\x1b[33mwarning\x1b[0m"
	default:
		return "\x1b[36minfo\x1b[0m"
	}
}
