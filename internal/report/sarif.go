package report

import (
	"encoding/json"
	"io"

	"github.com/envgrade/envgrade/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndColumn   int `json:"endColumn"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "error"
	case types.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes findings as SARIF 2.1.0. Findings without a path (stdin
// or single-buffer scans) are reported against the given fallback URI.
func WriteSARIF(w io.Writer, findings []types.Finding, toolVersion, fallbackURI string) error {
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: "envgrade", Version: toolVersion}},
		Results: []sarifResult{},
	}
	for _, f := range findings {
		uri := f.Path
		if uri == "" {
			uri = fallbackURI
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:  f.Name,
			Level:   sevToLevel(f.Severity),
			Message: sarifMessage{Text: f.Name + ": " + f.Remediation},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: uri},
					Region: sarifRegion{
						StartLine:   f.Line,
						StartColumn: f.StartColumn + 1,
						EndColumn:   f.EndColumn + 1,
					},
				},
			}},
		})
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
