// Package cache stores per-file content hashes between directory scans so
// unchanged files can be skipped. The cache is local state only and can be
// disabled entirely with --no-cache.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DB maps a path relative to the scan root to its last-seen content hash
// and the findings count recorded for it.
type DB struct {
	Entries map[string]Entry `json:"entries"`
}

// Entry is one cached file record.
type Entry struct {
	Hash     string `json:"hash"`
	Findings int    `json:"findings"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "envgradecache.json")
	}
	return filepath.Join(root, ".envgradecache.json")
}

// Load reads the cache for root, returning an empty DB on any error.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save persists the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0o644)
}
