package pattern

import (
	"reflect"
	"testing"
)

func TestParseBlankIsNil(t *testing.T) {
	if Parse("") != nil {
		t.Fatalf("expected nil for empty input")
	}
	if Parse("   ") != nil {
		t.Fatalf("expected nil for whitespace input")
	}
	if p := Parse(" xfs "); p == nil || p.Raw() != " xfs " {
		t.Fatalf("expected raw text preserved, got %#v", p)
	}
}

func TestScoreSubsequence(t *testing.T) {
	p := Parse("dt")
	if _, ok := p.Score("/data"); !ok {
		t.Fatalf("expected subsequence match on /data")
	}
	if _, ok := p.Score("ext4"); ok {
		t.Fatalf("did not expect ext4 to match dt")
	}
	if _, ok := p.Score(""); ok {
		t.Fatalf("empty text never matches")
	}
	if _, ok := Parse("XFS").Score("xfs"); !ok {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestSearchReturnsRunePositions(t *testing.T) {
	m, ok := Parse("dt").Search("/data")
	if !ok {
		t.Fatalf("expected match")
	}
	if !reflect.DeepEqual(m.Positions, []int{1, 3}) {
		t.Fatalf("unexpected positions %v", m.Positions)
	}
	if !m.Contains(3) || m.Contains(2) {
		t.Fatalf("Contains disagrees with positions %v", m.Positions)
	}

	m, ok = Parse("d").Search("é/d")
	if !ok || !reflect.DeepEqual(m.Positions, []int{2}) {
		t.Fatalf("expected rune position 2 after a multibyte rune, got %v", m.Positions)
	}

	if _, ok := Parse("zz").Search("/data"); ok {
		t.Fatalf("expected no match")
	}
}

func TestSearchFoldsAccentsLikeScore(t *testing.T) {
	p := Parse("e")
	if _, ok := p.Score("é"); !ok {
		t.Fatalf("expected score to ignore accents")
	}
	m, ok := p.Search("é")
	if !ok || !reflect.DeepEqual(m.Positions, []int{0}) {
		t.Fatalf("expected accented rune highlighted, got %v %v", m.Positions, ok)
	}

	m, ok = Parse("cafe n").Search("Café Noir")
	if !ok || !reflect.DeepEqual(m.Positions, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected positions %v", m.Positions)
	}

	m, ok = Parse("é").Search("/srv/media")
	if !ok || !reflect.DeepEqual(m.Positions, []int{6}) {
		t.Fatalf("expected accented query to match plain text, got %v %v", m.Positions, ok)
	}
}

func TestSearchAgreesWithScore(t *testing.T) {
	texts := []string{"/dev/sda1", "Müll", "ÉTÉ", "/mnt/über disk", "ext4", "naïve"}
	queries := []string{"u", "ue", "ete", "sd", "nv", "mud", "x"}
	for _, q := range queries {
		p := Parse(q)
		for _, text := range texts {
			_, scored := p.Score(text)
			_, searched := p.Search(text)
			if scored && !searched {
				t.Fatalf("%q kept %q without a highlight", q, text)
			}
		}
	}
}
