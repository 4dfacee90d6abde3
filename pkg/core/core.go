package core

import (
	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/redact"
	"github.com/envgrade/envgrade/internal/scan"
	"github.com/envgrade/envgrade/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers (CLI, CI action, editor
// extension) can depend on a stable path without importing internals.
type (
	Severity    = types.Severity
	Finding     = types.Finding
	ScanResult  = types.ScanResult
	GradeResult = types.GradeResult
	Weighting   = grade.Weighting
)

const (
	SevCritical = types.SevCritical
	SevWarning  = types.SevWarning
	SevInfo     = types.SevInfo
)

// LightWeighting is the default calibration; StrictWeighting is the steeper
// one for token/JWT analysis.
var (
	LightWeighting  = grade.Light
	StrictWeighting = grade.Strict
)

// ScanFreeText scans arbitrary text and returns the aggregate result, or nil
// for empty/whitespace-only input.
func ScanFreeText(text string) *ScanResult { return scan.FreeText(text) }

// ScanKeyValue scans KEY=VALUE formatted text and returns findings plus
// whether the finding cap truncated the scan; empty/whitespace-only input
// yields an empty set, never an error.
func ScanKeyValue(text string) ([]Finding, bool) { return scan.KeyValue(text) }

// Grade scores a finding set under the given weighting.
func Grade(findings []Finding, w Weighting) GradeResult { return grade.Grade(findings, w) }

// Redact returns text with each finding's matched secret masked.
func Redact(text string, findings []Finding) string { return redact.Redact(text, findings) }
