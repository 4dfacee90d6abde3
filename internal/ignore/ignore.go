// Package ignore loads .envgradeignore files: gitignore-style patterns, one
// per line, with # comments and blank lines skipped.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a relative path is ignored.
type Matcher struct {
	patterns []string
}

// Load reads an ignore file. A missing file yields an empty matcher and the
// underlying error so callers can ignore it.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel (forward-slash relative path) is ignored.
// Directory patterns with a trailing slash match everything beneath them;
// bare patterns also match against the basename so "*.pem" works anywhere.
// A leading "!" negates, and the last matching pattern wins, so
// ".env.*" followed by "!.env.example" ignores every env variant except
// the example file.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	ignored := false
	for _, p := range m.patterns {
		negate := strings.HasPrefix(p, "!")
		if negate {
			p = p[1:]
		}
		if matchOne(p, rel) {
			ignored = !negate
		}
	}
	return ignored
}

func matchOne(p, rel string) bool {
	if strings.HasSuffix(p, "/") {
		dir := strings.TrimSuffix(p, "/")
		return rel == dir || strings.HasPrefix(rel, dir+"/")
	}
	if ok, _ := doublestar.Match(p, rel); ok {
		return true
	}
	ok, _ := doublestar.Match(p, filepath.Base(rel))
	return ok
}
