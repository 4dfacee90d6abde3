package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures the given pattern is present in the named ignore file
// at root (e.g. ".gitignore" or ".envgradeignore"). It creates the file if
// missing and is idempotent. This backs the fix command that adds standard
// ignore entries for env-style files.
func AppendIgnore(root, name, pattern string) error {
	path := filepath.Join(root, name)
	existing := map[string]bool{}
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		_ = f.Close()
	}
	if existing[pattern] {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(pattern + "\n")
	return err
}

// HasIgnore reports whether the named ignore file at root already lists the
// pattern verbatim. A missing file counts as not containing it.
func HasIgnore(root, name, pattern string) (bool, error) {
	f, err := os.Open(filepath.Join(root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == pattern {
			return true, nil
		}
	}
	return false, sc.Err()
}

// DefaultEnvIgnores returns the standard ignore entries for files that
// commonly hold credentials.
func DefaultEnvIgnores() []string {
	return []string{
		".env",
		".env.*",
		"!.env.example",
		"*.pem",
		"*.key",
	}
}
