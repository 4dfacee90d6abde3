package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load returns an empty DB and the underlying error
	db, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for missing cache")
	}
	if db.Entries == nil {
		t.Fatal("expected entries map initialized")
	}
	db.Entries["a.env"] = Entry{Hash: "deadbeef", Findings: 3}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".envgradecache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	got := db2.Entries["a.env"]
	if got.Hash != "deadbeef" || got.Findings != 3 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestCacheUnderGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	db := DB{Entries: map[string]Entry{"x.env": {Hash: "ff"}}}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "envgradecache.json")); err != nil {
		t.Fatalf("cache should live under .git when present: %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".envgradecache.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	db, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for corrupt cache")
	}
	if db.Entries == nil {
		t.Fatal("corrupt cache must still yield a usable empty DB")
	}
}
