// Package engine orchestrates multi-file scans for the CLI and CI front
// ends: it walks a root directory, routes each file to the key=value or
// free-text pass, and aggregates findings into one graded result. The core
// detection stays in internal/scan; the engine only adds file plumbing.
package engine

import (
	"path/filepath"
	"strings"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/envgrade/envgrade/internal/cache"
	"github.com/envgrade/envgrade/internal/grade"
	"github.com/envgrade/envgrade/internal/ignore"
	"github.com/envgrade/envgrade/internal/scan"
	"github.com/envgrade/envgrade/internal/types"
)

// Config controls a directory scan.
type Config struct {
	Root         string
	IncludeGlobs string // comma-separated doublestar globs
	ExcludeGlobs string
	MaxBytes     int64
	NoCache      bool
	Weighting    grade.Weighting
}

// Result is the aggregate of one directory scan.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int // unchanged per cache
	Grade        types.GradeResult
	Duration     time.Duration
	Capped       bool
}

// Scan walks cfg.Root and scans every eligible file. Files whose basename
// looks like an env/properties file go through the structural analyzer;
// everything else goes through the free-text pass.
func Scan(cfg Config) (Result, error) {
	var res Result
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	db := cache.DB{Entries: map[string]cache.Entry{}}
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	}
	updated := map[string]cache.Entry{}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".envgradeignore"))

	started := time.Now()
	err := walk(cfg, ign, func(rel string, data []byte) {
		h := fastHash(data)
		if !cfg.NoCache {
			if e, ok := db.Entries[rel]; ok && e.Hash == h && e.Findings == 0 {
				res.FilesSkipped++
				return
			}
		}
		var fs []types.Finding
		var capped bool
		if IsKeyValuePath(rel) {
			fs, capped = scan.KeyValue(string(data))
		} else {
			fs, capped = scan.FreeTextFindings(string(data))
		}
		res.Capped = res.Capped || capped
		for i := range fs {
			fs[i].Path = rel
		}
		res.Findings = append(res.Findings, fs...)
		res.FilesScanned++
		updated[rel] = cache.Entry{Hash: h, Findings: len(fs)}
	})
	if err != nil {
		return res, err
	}

	types.SortFindings(res.Findings)
	res.Grade = grade.Grade(res.Findings, cfg.Weighting)
	res.Duration = time.Since(started)

	if !cfg.NoCache && len(updated) > 0 {
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return res, nil
}

// IsKeyValuePath reports whether a path should get the structural key=value
// analyzer rather than the free-text pass.
func IsKeyValuePath(rel string) bool {
	base := strings.ToLower(filepath.Base(rel))
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return true
	}
	return strings.HasSuffix(base, ".env") || strings.HasSuffix(base, ".properties")
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
