package types

import (
	"strings"
	"testing"
)

func TestSeverityRank(t *testing.T) {
	if SevCritical.Rank() >= SevWarning.Rank() || SevWarning.Rank() >= SevInfo.Rank() {
		t.Fatal("severity ranks out of order")
	}
}

func TestSortFindings(t *testing.T) {
	fs := []Finding{
		{Line: 2, StartColumn: 0, Name: "b", Severity: SevInfo},
		{Line: 5, StartColumn: 3, Name: "a", Severity: SevCritical},
		{Line: 1, StartColumn: 0, Name: "c", Severity: SevCritical},
		{Line: 1, StartColumn: 0, Name: "a", Severity: SevWarning},
		{Line: 1, StartColumn: 9, Name: "a", Severity: SevWarning},
	}
	SortFindings(fs)
	want := []struct {
		line int
		col  int
		name string
	}{
		{1, 0, "c"}, {5, 3, "a"}, {1, 0, "a"}, {1, 9, "a"}, {2, 0, "b"},
	}
	for i, w := range want {
		if fs[i].Line != w.line || fs[i].StartColumn != w.col || fs[i].Name != w.name {
			t.Fatalf("position %d: got %+v, want %+v", i, fs[i], w)
		}
	}
}

func TestDisplayMatchTruncation(t *testing.T) {
	short := Finding{Match: "abc"}
	if short.DisplayMatch() != "abc" {
		t.Fatalf("short matches pass through, got %q", short.DisplayMatch())
	}
	long := Finding{Match: strings.Repeat("x", 200)}
	got := long.DisplayMatch()
	if len(got) >= 200 {
		t.Fatalf("expected truncation, got %d bytes", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestCount(t *testing.T) {
	fs := []Finding{
		{Severity: SevCritical},
		{Severity: SevCritical},
		{Severity: SevWarning},
		{Severity: SevInfo},
	}
	c := Count(fs)
	if c.Critical != 2 || c.Warning != 1 || c.Info != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
}
