// Package scan implements the two detection passes over raw text: the
// key=value structural analyzer and the free-text scanner with its entropy
// fallback. Both run the shared pattern catalog and share dedup and cap
// behavior. All state is local to one call, so scans are safe to run
// concurrently and identical input always yields identical findings.
package scan

import (
	"fmt"

	"github.com/envgrade/envgrade/internal/patterns"
	"github.com/envgrade/envgrade/internal/types"
)

// MaxFindings caps one scan. Once reached, scanning stops early (mid-line if
// necessary) and the result is marked capped.
const MaxFindings = 500

// collector accumulates findings with positional dedup and the global cap.
type collector struct {
	findings []types.Finding
	seen     map[string]bool
	capped   bool
}

func newCollector() *collector {
	return &collector{seen: map[string]bool{}}
}

// add records f unless an identical (line, startColumn, name) finding exists.
// It returns false once the cap is reached.
func (c *collector) add(f types.Finding) bool {
	if c.capped {
		return false
	}
	key := fmt.Sprintf("%d|%d|%s", f.Line, f.StartColumn, f.Name)
	if !c.seen[key] {
		c.seen[key] = true
		c.findings = append(c.findings, f)
	}
	if len(c.findings) >= MaxFindings {
		c.capped = true
		return false
	}
	return true
}

// applyPatterns runs the full catalog (specific tier, then fallback) against
// line and emits one finding per match. colOffset shifts reported columns
// when line is a slice of a longer original line. It returns the matched
// bodies for overlap suppression on the entropy path.
func applyPatterns(c *collector, lineNo int, line string, colOffset int) []string {
	var matched []string
	for _, p := range patterns.All() {
		for _, sp := range p.Matches(line) {
			body := line[sp.Start:sp.End]
			matched = append(matched, body)
			ok := c.add(types.Finding{
				Line:        lineNo,
				StartColumn: colOffset + sp.Start,
				EndColumn:   colOffset + sp.End,
				Match:       body,
				Name:        p.Name,
				Severity:    p.Severity,
				Remediation: p.Remediation,
			})
			if !ok {
				return matched
			}
		}
	}
	return matched
}

// applyPatternsCommented runs the catalog against a stripped comment body and
// emits synthetic "Commented-out <Pattern>" findings. A commented-out secret
// is a hygiene failure rather than a confirmed live credential, so severity
// is capped at warning regardless of the pattern's own severity.
func applyPatternsCommented(c *collector, lineNo int, body string, colOffset int) {
	for _, p := range patterns.All() {
		for _, sp := range p.Matches(body) {
			ok := c.add(types.Finding{
				Line:        lineNo,
				StartColumn: colOffset + sp.Start,
				EndColumn:   colOffset + sp.End,
				Match:       body[sp.Start:sp.End],
				Name:        "Commented-out " + p.Name,
				Severity:    types.SevWarning,
				Remediation: "Delete the commented-out line; rotating the credential is still advisable.",
			})
			if !ok {
				return
			}
		}
	}
}
