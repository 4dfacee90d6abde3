package scan

import "strings"

// weakPasswords is the process-wide dictionary of known-bad literal
// passwords. Entries are stored lowercase; IsWeakPassword folds its input
// before the lookup.
var weakPasswords = map[string]bool{
	"password":      true,
	"password1":     true,
	"password123":   true,
	"passw0rd":      true,
	"p@ssw0rd":      true,
	"pass":          true,
	"pass123":       true,
	"123456":        true,
	"1234567":       true,
	"12345678":      true,
	"123456789":     true,
	"1234567890":    true,
	"111111":        true,
	"000000":        true,
	"qwerty":        true,
	"qwerty123":     true,
	"abc123":        true,
	"admin":         true,
	"admin123":      true,
	"administrator": true,
	"root":          true,
	"toor":          true,
	"letmein":       true,
	"welcome":       true,
	"welcome1":      true,
	"changeme":      true,
	"change_me":     true,
	"changeit":      true,
	"secret":        true,
	"default":       true,
	"test":          true,
	"test123":       true,
	"guest":         true,
	"iloveyou":      true,
	"monkey":        true,
	"dragon":        true,
	"sunshine":      true,
	"master":        true,
	"shadow":        true,
	"superman":      true,
	"trustno1":      true,
	"example":       true,
	"sample":        true,
	"temp":          true,
	"temp123":       true,
	"dev":           true,
	"devpassword":   true,
	"localdev":      true,
}

// IsWeakPassword reports whether s (case-folded) is in the weak-password
// dictionary.
func IsWeakPassword(s string) bool {
	return weakPasswords[strings.ToLower(s)]
}
