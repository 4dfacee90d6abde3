package scan

import (
	"regexp"
	"strings"

	"github.com/envgrade/envgrade/internal/types"
)

var (
	reValidKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// Keys that plausibly hold a credential; gates the weak-password check.
	reCredentialKey = regexp.MustCompile(`(?i)password|passwd|pass|secret|key|token`)
)

// KeyValue walks text line by line as KEY=VALUE assignments and applies the
// structural checks plus the full pattern catalog. Empty or whitespace-only
// input yields an empty (non-nil) finding set. Findings are returned in
// emission order; callers wanting severity ordering sort via types. The
// second return reports whether the finding cap stopped the scan early.
func KeyValue(text string) ([]types.Finding, bool) {
	if strings.TrimSpace(text) == "" {
		return []types.Finding{}, false
	}
	c := newCollector()
	firstSeen := map[string]int{}
	for i, raw := range strings.Split(text, "\n") {
		if c.capped {
			break
		}
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		indent := strings.Index(raw, trimmed)
		if marker := commentMarker(trimmed); marker != "" {
			body := strings.TrimLeft(trimmed[len(marker):], " \t")
			applyPatternsCommented(c, lineNo, body, indent+strings.Index(trimmed, body))
			continue
		}
		analyzeAssignment(c, firstSeen, lineNo, raw, trimmed, indent)
	}
	return c.findings, c.capped
}

func commentMarker(trimmed string) string {
	if strings.HasPrefix(trimmed, "#") {
		return "#"
	}
	if strings.HasPrefix(trimmed, "//") {
		return "//"
	}
	return ""
}

func analyzeAssignment(c *collector, firstSeen map[string]int, lineNo int, raw, trimmed string, indent int) {
	eq := strings.Index(raw, "=")
	if eq < 0 {
		// Free text commonly contains non-assignment lines; not an error.
		return
	}
	key := strings.TrimSpace(raw[:eq])
	keyCol := 0
	if key != "" {
		keyCol = strings.Index(raw, key)
	}
	if !reValidKey.MatchString(key) {
		c.add(types.Finding{
			Line: lineNo, StartColumn: keyCol, EndColumn: keyCol + len(key),
			Match: key, Name: "Invalid key name", Severity: types.SevWarning,
			Remediation: "Rename the key to letters, digits and underscores, starting with a letter or underscore.",
		})
	} else if first, dup := firstSeen[key]; dup {
		c.add(types.Finding{
			Line: lineNo, StartColumn: keyCol, EndColumn: keyCol + len(key),
			Match: key, Name: "Duplicate key", Severity: types.SevWarning,
			RelatedLine: first,
			Remediation: "Remove the duplicate; the first occurrence stays canonical for most loaders.",
		})
	} else {
		firstSeen[key] = lineNo
	}

	value := strings.TrimSpace(raw[eq+1:])
	valCol := eq + 1
	if value != "" {
		valCol = eq + 1 + strings.Index(raw[eq+1:], value)
	}
	if value == "" {
		c.add(types.Finding{
			Line: lineNo, StartColumn: valCol, EndColumn: valCol,
			Match: "", Name: "Empty value", Severity: types.SevInfo,
			Remediation: "Fill in the value or remove the key.",
		})
		return
	}
	checkQuoting(c, lineNo, value, valCol)
	checkWeakPassword(c, lineNo, key, value, valCol)
	applyPatterns(c, lineNo, trimmed, indent)
}

func checkQuoting(c *collector, lineNo int, value string, valCol int) {
	q := value[0]
	quoted := (q == '"' || q == '\'') && len(value) >= 2 && value[len(value)-1] == q
	if strings.Contains(value, " ") && !quoted {
		c.add(types.Finding{
			Line: lineNo, StartColumn: valCol, EndColumn: valCol + len(value),
			Match: value, Name: "Unquoted value with spaces", Severity: types.SevWarning,
			Remediation: "Wrap the value in quotes so loaders do not truncate it at the first space.",
		})
	}
	if (q == '"' || q == '\'') && strings.Count(value, string(q))%2 == 1 {
		c.add(types.Finding{
			Line: lineNo, StartColumn: valCol, EndColumn: valCol + len(value),
			Match: value, Name: "Mismatched quotes", Severity: types.SevWarning,
			Remediation: "Close the opening quote.",
		})
	}
}

func checkWeakPassword(c *collector, lineNo int, key, value string, valCol int) {
	if !reCredentialKey.MatchString(key) {
		return
	}
	stripped := strings.Trim(value, `"'`)
	if !IsWeakPassword(stripped) {
		return
	}
	c.add(types.Finding{
		Line: lineNo, StartColumn: valCol, EndColumn: valCol + len(value),
		Match: stripped, Name: "Weak/default password", Severity: types.SevCritical,
		Remediation: "Replace with a generated high-entropy password and rotate anywhere it was used.",
	})
}
