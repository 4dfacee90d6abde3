package scan

import (
	"regexp"
	"strings"
	"time"

	"github.com/envgrade/envgrade/internal/entropy"
	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/redact"
	"github.com/envgrade/envgrade/internal/types"
)

// reCandidate extracts entropy candidates: a quoted or assigned
// alphanumeric-ish run of at least 16 characters.
var reCandidate = regexp.MustCompile(`["']([A-Za-z0-9+/=_-]{16,})["']|[:=]\s*["']?([A-Za-z0-9+/=_-]{16,})`)

const (
	highEntropyThreshold       = 5.0
	suspiciousEntropyThreshold = 4.5
	// overlapPrefixLen is how much of a candidate is compared against
	// pattern matches on the same line. This is deliberately prefix
	// containment, not span overlap: it can over-suppress an unrelated
	// token sharing a prefix and under-suppress a pattern match elsewhere
	// in a long token. Kept as documented product behavior.
	overlapPrefixLen = 16
)

// FreeTextFindings runs the free-text pass and returns the raw findings plus
// whether the cap was hit. Used by FreeText and by multi-file scanning.
func FreeTextFindings(text string) ([]types.Finding, bool) {
	c := newCollector()
	for i, raw := range strings.Split(text, "\n") {
		if c.capped {
			break
		}
		lineNo := i + 1
		matched := applyPatterns(c, lineNo, raw, 0)
		if c.capped {
			break
		}
		entropyFallback(c, lineNo, raw, matched)
	}
	return c.findings, c.capped
}

func entropyFallback(c *collector, lineNo int, line string, matched []string) {
	for _, loc := range reCandidate.FindAllStringSubmatchIndex(line, -1) {
		start, end := loc[2], loc[3]
		if start < 0 {
			start, end = loc[4], loc[5]
		}
		if start < 0 {
			continue
		}
		tok := line[start:end]
		if entropy.ShouldSkip(tok) {
			continue
		}
		if coveredByPattern(tok, matched) {
			continue
		}
		h := entropy.Shannon(tok)
		var name string
		var sev types.Severity
		switch {
		case h > highEntropyThreshold:
			name, sev = "High Entropy String", types.SevCritical
		case h > suspiciousEntropyThreshold:
			name, sev = "Suspicious Entropy String", types.SevWarning
		default:
			continue
		}
		ok := c.add(types.Finding{
			Line: lineNo, StartColumn: start, EndColumn: end,
			Match: tok, Name: name, Severity: sev,
			Remediation: "Confirm whether this is a credential; if so, rotate it and load it from a secret store.",
		})
		if !ok {
			return
		}
	}
}

// coveredByPattern suppresses an entropy candidate when a pattern match on
// the same line already contains the candidate's prefix.
func coveredByPattern(tok string, matched []string) bool {
	prefix := tok
	if len(prefix) > overlapPrefixLen {
		prefix = prefix[:overlapPrefixLen]
	}
	for _, m := range matched {
		if strings.Contains(m, prefix) {
			return true
		}
	}
	return false
}

// FreeText scans arbitrary text (logs, code, pasted snippets) and returns
// the full aggregate result: ordered findings, counts, grade under the
// light weighting, a redacted copy of the input, and elapsed time. Empty or
// whitespace-only input returns nil.
func FreeText(text string) *types.ScanResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	started := time.Now()
	findings, capped := FreeTextFindings(text)
	types.SortFindings(findings)
	return &types.ScanResult{
		Findings: findings,
		Counts:   types.Count(findings),
		Grade:    grade.Grade(findings, grade.Light),
		Redacted: redact.Redact(text, findings),
		Elapsed:  time.Since(started),
		Capped:   capped,
	}
}
