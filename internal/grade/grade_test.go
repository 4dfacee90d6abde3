package grade

import (
	"testing"

	"github.com/envgrade/envgrade/internal/types"
)

func mkFindings(critical, warning, info int) []types.Finding {
	var fs []types.Finding
	for i := 0; i < critical; i++ {
		fs = append(fs, types.Finding{Severity: types.SevCritical})
	}
	for i := 0; i < warning; i++ {
		fs = append(fs, types.Finding{Severity: types.SevWarning})
	}
	for i := 0; i < info; i++ {
		fs = append(fs, types.Finding{Severity: types.SevInfo})
	}
	return fs
}

func TestGradeClean(t *testing.T) {
	g := Grade(nil, Light)
	if g.Score != 100 || g.Letter != "A" {
		t.Fatalf("expected 100/A, got %+v", g)
	}
}

func TestGradeLightWeighting(t *testing.T) {
	cases := []struct {
		critical, warning, info int
		score                   int
		letter                  string
	}{
		{0, 0, 0, 100, "A"},
		{0, 1, 0, 95, "A"},
		{1, 0, 0, 85, "B"},
		{1, 2, 0, 75, "B"},
		{2, 1, 0, 65, "C"},
		{3, 2, 0, 45, "D"},
		{4, 0, 0, 40, "D"},
		{5, 0, 0, 25, "F"},
		{7, 0, 0, 0, "F"},
		{0, 0, 10, 100, "A"}, // info findings are free under the light weighting
	}
	for _, c := range cases {
		g := Grade(mkFindings(c.critical, c.warning, c.info), Light)
		if g.Score != c.score || g.Letter != c.letter {
			t.Errorf("%d/%d/%d: expected %d/%s, got %d/%s",
				c.critical, c.warning, c.info, c.score, c.letter, g.Score, g.Letter)
		}
	}
}

func TestGradeStrictWeighting(t *testing.T) {
	g := Grade(mkFindings(1, 0, 0), Strict)
	if g.Score != 60 || g.Letter != "C" {
		t.Fatalf("expected 60/C, got %+v", g)
	}
	g = Grade(mkFindings(0, 1, 1), Strict)
	if g.Score != 80 || g.Letter != "B" {
		t.Fatalf("expected 80/B, got %+v", g)
	}
	g = Grade(mkFindings(3, 0, 0), Strict)
	if g.Score != 0 || g.Letter != "F" {
		t.Fatalf("score floors at 0, got %+v", g)
	}
}

func TestGradeMonotonic(t *testing.T) {
	prev := 101
	for n := 0; n <= 10; n++ {
		g := Grade(mkFindings(n, n, n), Light)
		if g.Score > prev {
			t.Fatalf("score increased when findings were added: %d after %d", g.Score, prev)
		}
		prev = g.Score
	}
}

func TestLetterBoundaries(t *testing.T) {
	cases := []struct {
		score  int
		letter string
	}{
		{100, "A"}, {90, "A"}, {89, "B"}, {75, "B"}, {74, "C"},
		{60, "C"}, {59, "D"}, {40, "D"}, {39, "F"}, {0, "F"},
	}
	for _, c := range cases {
		letter, _ := letterFor(c.score)
		if letter != c.letter {
			t.Errorf("score %d: expected %s, got %s", c.score, c.letter, letter)
		}
	}
}

func TestWorse(t *testing.T) {
	if !Worse("F", "D") || !Worse("D", "C") || !Worse("B", "A") {
		t.Fatal("lower letters must rank worse")
	}
	if Worse("A", "A") || Worse("B", "D") {
		t.Fatal("equal or better letters must not rank worse")
	}
}

func TestPassing(t *testing.T) {
	for _, l := range []string{"A", "B", "C"} {
		if !Passing(l) {
			t.Errorf("%s should pass", l)
		}
	}
	for _, l := range []string{"D", "F"} {
		if Passing(l) {
			t.Errorf("%s should not pass", l)
		}
	}
}
