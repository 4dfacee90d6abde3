package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/envgrade/envgrade/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	fs := []types.Finding{
		{Path: "a.env", Line: 3, StartColumn: 12, EndColumn: 32, Name: "AWS Access Key ID", Severity: types.SevCritical, Remediation: "Rotate the key."},
		{Line: 1, StartColumn: 0, EndColumn: 5, Name: "Empty value", Severity: types.SevInfo},
	}
	var b strings.Builder
	if err := WriteSARIF(&b, fs, "0.1.0", "stdin"); err != nil {
		t.Fatalf("write: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(b.String()), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Fatalf("unexpected version %v", doc["version"])
	}
	runs := doc["runs"].([]any)
	run := runs[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0].(map[string]any)
	if first["ruleId"] != "AWS Access Key ID" || first["level"] != "error" {
		t.Fatalf("unexpected first result %v", first)
	}
	loc := first["locations"].([]any)[0].(map[string]any)["physicalLocation"].(map[string]any)
	region := loc["region"].(map[string]any)
	// SARIF columns are 1-based.
	if region["startColumn"].(float64) != 13 || region["endColumn"].(float64) != 33 {
		t.Fatalf("columns not converted to 1-based: %v", region)
	}
	if loc["artifactLocation"].(map[string]any)["uri"] != "a.env" {
		t.Fatalf("unexpected uri %v", loc)
	}

	second := results[1].(map[string]any)
	if second["level"] != "note" {
		t.Fatalf("info should map to note, got %v", second["level"])
	}
	uri := second["locations"].([]any)[0].(map[string]any)["physicalLocation"].(map[string]any)["artifactLocation"].(map[string]any)["uri"]
	if uri != "stdin" {
		t.Fatalf("pathless finding should use the fallback URI, got %v", uri)
	}
}

func TestWriteSARIFEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteSARIF(&b, nil, "0.1.0", "stdin"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(b.String(), `"results": []`) {
		t.Fatalf("results must be an empty array, not null:\n%s", b.String())
	}
}
