// Package grade converts finding sets into a numeric score and letter grade
// via configurable per-severity penalties.
package grade

import "github.com/envgrade/envgrade/internal/types"

// Weighting is a set of per-severity score penalties.
type Weighting struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// Light is the default calibration used for env files and general scans.
// Info findings carry no penalty, so info-only input always grades A.
var Light = Weighting{Critical: 15, Warning: 5, Info: 0}

// Strict is the steeper calibration for higher-stakes artifacts such as
// tokens and JWTs.
var Strict = Weighting{Critical: 40, Warning: 15, Info: 5}

// Grade scores the finding set under the given weighting. Total and
// deterministic: any finding set, including empty, yields a grade.
func Grade(fs []types.Finding, w Weighting) types.GradeResult {
	c := types.Count(fs)
	score := 100 - w.Critical*c.Critical - w.Warning*c.Warning - w.Info*c.Info
	if score < 0 {
		score = 0
	}
	letter, label := letterFor(score)
	return types.GradeResult{Score: score, Letter: letter, Label: label}
}

func letterFor(score int) (string, string) {
	switch {
	case score >= 90:
		return "A", "Excellent"
	case score >= 75:
		return "B", "Good"
	case score >= 60:
		return "C", "Fair"
	case score >= 40:
		return "D", "Poor"
	default:
		return "F", "Failing"
	}
}

// Rank maps a letter grade onto the fixed ordering A<B<C<D<F. Unknown
// letters rank worst.
func Rank(letter string) int {
	switch letter {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	default:
		return 4
	}
}

// Worse reports whether grade a is strictly worse than grade b.
func Worse(a, b string) bool { return Rank(a) > Rank(b) }

// Passing reports whether the grade maps to a zero exit status (A-C).
func Passing(letter string) bool { return Rank(letter) <= 2 }
