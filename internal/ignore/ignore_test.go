package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, ".envgradeignore")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if m.Match("anything") {
		t.Fatal("empty matcher must not match")
	}
}

func TestMatchBasename(t *testing.T) {
	p := write(t, t.TempDir(), "*.pem\n# comment\n\nsecrets.txt\n")
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Match("certs/server.pem") {
		t.Fatal("basename glob should match in subdirectories")
	}
	if !m.Match("secrets.txt") || !m.Match("deep/nested/secrets.txt") {
		t.Fatal("bare name should match anywhere")
	}
	if m.Match("certs/server.crt") {
		t.Fatal("unrelated file matched")
	}
}

func TestMatchDirPrefix(t *testing.T) {
	p := write(t, t.TempDir(), "vendor/\n")
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Match("vendor/lib/a.env") || !m.Match("vendor") {
		t.Fatal("directory pattern should match everything beneath it")
	}
	if m.Match("vendored/a.env") {
		t.Fatal("prefix must respect path boundaries")
	}
}

func TestMatchNegation(t *testing.T) {
	p := write(t, t.TempDir(), ".env\n.env.*\n!.env.example\n*.pem\n")
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Match(".env") || !m.Match(".env.local") || !m.Match("deploy/.env.prod") {
		t.Fatal("env variants should be ignored")
	}
	if m.Match(".env.example") || m.Match("deploy/.env.example") {
		t.Fatal("negated pattern should un-ignore the example file")
	}
	if !m.Match("certs/ca.pem") {
		t.Fatal("later patterns still apply")
	}
}

func TestMatchNegationOrder(t *testing.T) {
	// Last match wins: re-ignoring after a negation sticks.
	p := write(t, t.TempDir(), "*.key\n!server.key\n*.key\n")
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Match("server.key") {
		t.Fatal("final pattern should re-ignore the file")
	}
}

func TestMatchDoublestar(t *testing.T) {
	p := write(t, t.TempDir(), "testdata/**/*.env\n")
	m, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Match("testdata/fixtures/dev/.env") {
		t.Fatal("doublestar pattern should match nested paths")
	}
	if m.Match("src/app.env") {
		t.Fatal("pattern should not match outside its root")
	}
}
