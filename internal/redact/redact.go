// Package redact rewrites scanned text with matched secrets replaced by a
// partially-preserved prefix plus a fixed marker. Redaction is best-effort:
// a finding whose matched text can no longer be located on its line is
// skipped silently, never escalated.
package redact

import (
	"sort"
	"strings"

	"github.com/envgrade/envgrade/internal/types"
)

// Marker replaces the non-preserved portion of every matched secret.
const Marker = "****REDACTED****"

// knownPrefixes are credential shapes whose leading characters stay visible
// so a redacted value remains recognizable.
var knownPrefixes = []string{
	"AKIA", "ASIA",
	"sk_live_", "sk_test_", "sk-ant-", "sk-or-", "sk-",
	"ghp_", "gho_", "ghu_", "ghs_", "ghr_", "github_pat_",
	"glpat-", "glptt-",
	"xoxa-", "xoxb-", "xoxp-", "xoxr-", "xoxs-",
	"npm_", "dckr_pat_", "pypi-",
	"AIza", "dop_v1_", "flyv1_",
	"hf_", "gsk_", "pplx-", "r8_",
	"whsec_", "dapi", "SG.", "secret_", "lin_api_",
	"sntrys_", "phx_", "phc_", "nf_",
}

// Redact returns a copy of text with each finding's matched span replaced by
// its preserved prefix plus the marker. Line structure is preserved.
func Redact(text string, findings []types.Finding) string {
	if len(findings) == 0 {
		return text
	}
	byLine := map[int][]types.Finding{}
	for _, f := range findings {
		if f.Match == "" {
			continue
		}
		byLine[f.Line] = append(byLine[f.Line], f)
	}
	lines := strings.Split(text, "\n")
	for ln, fs := range byLine {
		if ln < 1 || ln > len(lines) {
			continue
		}
		// Right-to-left so earlier splices do not shift the columns of
		// findings still to be applied.
		sort.SliceStable(fs, func(i, j int) bool { return fs[i].StartColumn > fs[j].StartColumn })
		line := lines[ln-1]
		for _, f := range fs {
			line = redactLine(line, f)
		}
		lines[ln-1] = line
	}
	return strings.Join(lines, "\n")
}

func redactLine(line string, f types.Finding) string {
	start := -1
	if f.StartColumn >= 0 && f.StartColumn+len(f.Match) <= len(line) &&
		line[f.StartColumn:f.StartColumn+len(f.Match)] == f.Match {
		start = f.StartColumn
	} else if idx := strings.Index(line, f.Match); idx >= 0 {
		start = idx
	}
	if start < 0 {
		return line
	}
	keep := preservedLen(f.Match)
	return line[:start+keep] + Marker + line[start+len(f.Match):]
}

// preservedLen decides how much of a matched secret stays visible: PEM
// headers keep nothing, known-prefixed shapes keep up to 8 characters
// through the last separator inside that window, everything else keeps up
// to 4 characters.
func preservedLen(match string) int {
	if strings.HasPrefix(match, "-----BEGIN") {
		return 0
	}
	for _, p := range knownPrefixes {
		if !strings.HasPrefix(match, p) {
			continue
		}
		keep := 8
		if keep > len(match) {
			keep = len(match)
		}
		if u := strings.LastIndexByte(match[:keep], '_'); u >= 0 {
			keep = u + 1
		}
		return keep
	}
	if len(match) < 4 {
		return len(match)
	}
	return 4
}
