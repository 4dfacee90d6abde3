package patterns

import (
	"regexp"

	"github.com/envgrade/envgrade/internal/types"
)

// Span is one credential occurrence on a line. Start/End delimit the
// credential body, 0-indexed with the end exclusive. When the surrounding
// assignment syntax (KEY=, Authorization: Bearer, ...) is not itself part of
// the secret, the span covers only the captured body.
type Span struct {
	Start int
	End   int
}

// Matcher recognizes a credential shape on a single line. Implementations
// must be total and linear-time on untrusted input; the regexp-backed
// implementation below keeps that guarantee via Go's RE2 engine. Keeping
// matching behind this interface isolates the strategy to one auditable
// boundary.
type Matcher interface {
	Match(line string) []Span
}

type regexMatcher struct {
	re    *regexp.Regexp
	group int
}

func (m regexMatcher) Match(line string) []Span {
	idx := m.re.FindAllStringSubmatchIndex(line, -1)
	if idx == nil {
		return nil
	}
	out := make([]Span, 0, len(idx))
	for _, loc := range idx {
		start, end := loc[0], loc[1]
		if m.group > 0 && 2*m.group+1 < len(loc) && loc[2*m.group] >= 0 {
			start, end = loc[2*m.group], loc[2*m.group+1]
		}
		if start < 0 || end <= start {
			continue
		}
		out = append(out, Span{Start: start, End: end})
	}
	return out
}

// rx builds a matcher over the whole regexp match.
func rx(expr string) Matcher { return regexMatcher{re: regexp.MustCompile(expr)} }

// rxg builds a matcher that reports the given capture group as the body.
func rxg(expr string, group int) Matcher {
	return regexMatcher{re: regexp.MustCompile(expr), group: group}
}

// Pattern is an immutable catalog entry. Patterns are consulted in catalog
// order; the first-registered pattern wins ambiguous precedence.
type Pattern struct {
	Name        string
	Severity    types.Severity
	Description string
	Remediation string
	Matcher     Matcher
}

// Matches applies the pattern to one line.
func (p Pattern) Matches(line string) []Span { return p.Matcher.Match(line) }

var (
	specific []Pattern
	fallback []Pattern
	all      []Pattern
)

func init() {
	specific = append(specific, cloudPatterns...)
	specific = append(specific, vcsPatterns...)
	specific = append(specific, aiPatterns...)
	specific = append(specific, saasPatterns...)
	specific = append(specific, keyPatterns...)
	specific = append(specific, uriPatterns...)
	specific = append(specific, webhookPatterns...)
	fallback = append(fallback, genericPatterns...)
	all = append(all, specific...)
	all = append(all, fallback...)
}

// Specific returns the provider-shaped tier of the catalog.
func Specific() []Pattern { return specific }

// Fallback returns the low-confidence catch-all tier. It is always evaluated
// after Specific so that precise, higher-severity patterns get first shot at
// a line; the fallback tier never carries critical severity.
func Fallback() []Pattern { return fallback }

// All returns the full ordered catalog: specific tier, then fallback tier.
func All() []Pattern { return all }

// ByName returns the pattern with the given name, if registered.
func ByName(name string) (Pattern, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
