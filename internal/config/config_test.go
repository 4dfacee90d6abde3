package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".envgrade.yml")
	data := []byte("include: \"**/*.env\"\nstrict: true\nmax_bytes: 2048\nweights:\n  critical: 50\n")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.env" {
		t.Fatalf("include not parsed: %+v", cfg.Include)
	}
	if cfg.Strict == nil || !*cfg.Strict {
		t.Fatal("strict not parsed")
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 2048 {
		t.Fatal("max_bytes not parsed")
	}
	if cfg.Weights == nil || cfg.Weights.Critical == nil || *cfg.Weights.Critical != 50 {
		t.Fatal("weights.critical not parsed")
	}
	// Unset fields stay nil so precedence resolution can tell them apart
	// from explicit zero values.
	if cfg.Exclude != nil || cfg.NoColor != nil || cfg.Weights.Warning != nil {
		t.Fatalf("unset fields should be nil: %+v", cfg)
	}
}

func TestLoadLocalSearchOrder(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error for missing config")
	}
	if err := os.WriteFile(filepath.Join(dir, "envgrade.yaml"), []byte("strict: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".envgrade.yml"), []byte("strict: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// The dotfile wins over the bare name.
	if cfg.Strict == nil || *cfg.Strict {
		t.Fatalf("expected .envgrade.yml to take precedence: %+v", cfg)
	}
}

func TestLoadGlobalXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error for missing global config")
	}
	sub := filepath.Join(dir, "envgrade")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "config.yml"), []byte("fail_grade: C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FailGrade == nil || *cfg.FailGrade != "C" {
		t.Fatalf("fail_grade not parsed: %+v", cfg)
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(p, []byte("include: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}
