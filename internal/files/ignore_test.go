package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendIgnoreCreates(t *testing.T) {
	dir := t.TempDir()
	if err := AppendIgnore(dir, ".gitignore", ".env"); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != ".env\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestAppendIgnoreIdempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		if err := AppendIgnore(dir, ".gitignore", "*.pem"); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	b, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if got := strings.Count(string(b), "*.pem"); got != 1 {
		t.Fatalf("expected one entry, got %d", got)
	}
}

func TestAppendIgnorePreservesExisting(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(p, []byte("node_modules/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := AppendIgnore(dir, ".gitignore", ".env"); err != nil {
		t.Fatalf("append: %v", err)
	}
	b, _ := os.ReadFile(p)
	if !strings.Contains(string(b), "node_modules/") || !strings.Contains(string(b), ".env") {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestHasIgnore(t *testing.T) {
	dir := t.TempDir()
	ok, err := HasIgnore(dir, ".gitignore", ".env")
	if err != nil || ok {
		t.Fatalf("missing file should report absent, got %v %v", ok, err)
	}
	if err := AppendIgnore(dir, ".gitignore", ".env"); err != nil {
		t.Fatalf("append: %v", err)
	}
	ok, err = HasIgnore(dir, ".gitignore", ".env")
	if err != nil || !ok {
		t.Fatalf("expected entry present, got %v %v", ok, err)
	}
	ok, _ = HasIgnore(dir, ".gitignore", "*.pem")
	if ok {
		t.Fatal("unrelated pattern reported present")
	}
}

func TestDefaultEnvIgnores(t *testing.T) {
	entries := DefaultEnvIgnores()
	if len(entries) == 0 {
		t.Fatal("expected default entries")
	}
	found := false
	for _, e := range entries {
		if e == "!.env.example" {
			found = true
		}
	}
	if !found {
		t.Fatal("defaults must keep .env.example unignored")
	}
}
