package report

import (
	"strings"
	"testing"

	"github.com/envgrade/envgrade/internal/types"
)

func TestWriteMarkdownClean(t *testing.T) {
	var b strings.Builder
	WriteMarkdown(&b, nil, types.GradeResult{Score: 100, Letter: "A", Label: "Excellent"})
	out := b.String()
	if !strings.Contains(out, "grade A (100/100)") {
		t.Fatalf("missing grade header:\n%s", out)
	}
	if strings.Contains(out, "| Severity |") {
		t.Fatal("clean result should not render a table")
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	fs := []types.Finding{
		{Path: "a.env", Line: 3, Name: "Weak/default password", Severity: types.SevCritical, Match: "password123"},
		{Line: 1, Name: "Duplicate key", Severity: types.SevWarning, Match: "KEY_A"},
	}
	var b strings.Builder
	WriteMarkdown(&b, fs, types.GradeResult{Score: 45, Letter: "D", Label: "Poor"})
	out := b.String()
	if !strings.Contains(out, "| Severity | Finding | Location | Match |") {
		t.Fatalf("missing table header:\n%s", out)
	}
	if !strings.Contains(out, "a.env:3") {
		t.Fatalf("missing path location:\n%s", out)
	}
	if !strings.Contains(out, "line 1") {
		t.Fatalf("pathless finding should render a bare line location:\n%s", out)
	}
	if strings.Contains(out, "password123") {
		t.Fatalf("raw secret leaked into markdown:\n%s", out)
	}
}

func TestWriteMarkdownEscapesPipes(t *testing.T) {
	fs := []types.Finding{
		{Line: 1, Name: "odd|name", Severity: types.SevInfo, Match: "val"},
	}
	var b strings.Builder
	WriteMarkdown(&b, fs, types.GradeResult{Score: 100, Letter: "A"})
	if !strings.Contains(b.String(), `odd\|name`) {
		t.Fatalf("pipe not escaped:\n%s", b.String())
	}
}
