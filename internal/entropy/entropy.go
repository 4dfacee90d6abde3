package entropy

import (
	"math"
	"regexp"
	"strings"
)

// Shannon returns the per-character Shannon entropy of s in bits. The empty
// string has entropy 0. The value depends only on the character multiset, not
// on ordering.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		h += -p * math.Log2(p)
	}
	return h
}

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// MD5/SHA1/SHA256-shaped lowercase hex digests
	reHexDigest = regexp.MustCompile(`^(?:[0-9a-f]{32}|[0-9a-f]{40}|[0-9a-f]{64})$`)
	reDrivePath = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
	reBareURL   = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://[^\s@]+$`)
	reDomain    = regexp.MustCompile(`^[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+$`)
)

// ShouldSkip reports whether s matches a benign shape that the entropy
// fallback must not flag: UUIDs, hex digests, filesystem paths, bare URLs
// without embedded credentials, and bare domain names. It is consulted only
// on the entropy path and never suppresses pattern-based findings.
func ShouldSkip(s string) bool {
	if reUUID.MatchString(s) || reHexDigest.MatchString(s) {
		return true
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") || reDrivePath.MatchString(s) {
		return true
	}
	if reBareURL.MatchString(s) || reDomain.MatchString(s) {
		return true
	}
	return false
}
