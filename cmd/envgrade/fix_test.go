package envgrade

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyEnvIgnores(t *testing.T) {
	dir := t.TempDir()
	added, err := applyEnvIgnores(dir, ".gitignore")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(added) != 5 {
		t.Fatalf("expected all defaults added, got %v", added)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{".env", ".env.*", "!.env.example", "*.pem", "*.key"} {
		if !strings.Contains(string(b), want+"\n") {
			t.Fatalf("missing entry %q in %q", want, b)
		}
	}

	// Second run must be a no-op.
	added, err = applyEnvIgnores(dir, ".gitignore")
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if len(added) != 0 {
		t.Fatalf("expected no additions on rerun, got %v", added)
	}
}

func TestApplyEnvIgnoresPartial(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(p, []byte("node_modules/\n.env\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	added, err := applyEnvIgnores(dir, ".gitignore")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for _, a := range added {
		if a == ".env" {
			t.Fatal("existing entry re-added")
		}
	}
	b, _ := os.ReadFile(p)
	if strings.Count(string(b), ".env\n") != 1 {
		t.Fatalf("duplicate .env entry:\n%s", b)
	}
	if !strings.Contains(string(b), "node_modules/") {
		t.Fatal("existing content lost")
	}
}

func TestExampleFromDotenv(t *testing.T) {
	in := "# database\nDB_PASSWORD=hunter22secret\n\nAPP_NAME = demo\nnot a pair\n"
	got := exampleFromDotenv(in, false)
	want := "# database\nDB_PASSWORD=\n\nAPP_NAME=\nnot a pair\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestExampleFromDotenvKeepValues(t *testing.T) {
	in := "DB_PASSWORD=hunter22secret\n"
	if got := exampleFromDotenv(in, true); got != in {
		t.Fatalf("keep-values should copy verbatim, got %q", got)
	}
}
