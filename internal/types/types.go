package types

import (
	"sort"
	"time"
)

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevCritical Severity = "critical"
	SevWarning  Severity = "warning"
	SevInfo     Severity = "info"
)

// Rank orders severities for sorting; lower is more severe.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 0
	case SevWarning:
		return 1
	default:
		return 2
	}
}

// Finding describes one detected issue at a specific line and column span,
// including the pattern (or synthesized) name, severity, and remediation
// text. Line is 1-indexed; StartColumn/EndColumn are 0-indexed with the end
// exclusive. Match always holds the full matched substring; display paths
// truncate via DisplayMatch so redaction can still locate the original text.
type Finding struct {
	// Path is set only by multi-file scans; single-buffer scans leave it
	// empty.
	Path        string   `json:"path,omitempty"`
	Line        int      `json:"line"`
	StartColumn int      `json:"startColumn"`
	EndColumn   int      `json:"endColumn"`
	Match       string   `json:"match"`
	Name        string   `json:"name"`
	Severity    Severity `json:"severity"`
	Remediation string   `json:"remediation,omitempty"`
	// RelatedLine references another line involved in the finding, e.g. the
	// first occurrence for a duplicate key. 0 when not applicable.
	RelatedLine int `json:"relatedLine,omitempty"`
}

// maxDisplayMatch bounds how much of a matched secret is ever shown.
const maxDisplayMatch = 64

// DisplayMatch returns the matched text truncated for human output.
func (f Finding) DisplayMatch() string {
	if len(f.Match) <= maxDisplayMatch {
		return f.Match
	}
	return f.Match[:maxDisplayMatch] + "…"
}

// SortFindings orders findings critical-first, then by ascending line,
// then by start column, then by name for a stable order.
func SortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Severity.Rank() != fs[j].Severity.Rank() {
			return fs[i].Severity.Rank() < fs[j].Severity.Rank()
		}
		if fs[i].Line != fs[j].Line {
			return fs[i].Line < fs[j].Line
		}
		if fs[i].StartColumn != fs[j].StartColumn {
			return fs[i].StartColumn < fs[j].StartColumn
		}
		return fs[i].Name < fs[j].Name
	})
}

// Counts tallies findings per severity.
type Counts struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// Count tallies the given findings per severity.
func Count(fs []Finding) Counts {
	var c Counts
	for _, f := range fs {
		switch f.Severity {
		case SevCritical:
			c.Critical++
		case SevWarning:
			c.Warning++
		default:
			c.Info++
		}
	}
	return c
}

// GradeResult is the numeric score and letter grade for a finding set.
type GradeResult struct {
	Score  int    `json:"score"`
	Letter string `json:"letter"`
	Label  string `json:"label"`
}

// ScanResult aggregates one free-text scan: ordered findings, severity
// counts, the grade, a redacted copy of the input, elapsed scan time, and
// whether the finding cap was hit. Constructed fresh per scan and never
// mutated afterwards.
type ScanResult struct {
	Findings []Finding     `json:"findings"`
	Counts   Counts        `json:"counts"`
	Grade    GradeResult   `json:"grade"`
	Redacted string        `json:"redacted"`
	Elapsed  time.Duration `json:"elapsed"`
	Capped   bool          `json:"capped"`
}
