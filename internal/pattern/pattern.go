// Package pattern provides the fuzzy matching capability used to filter and
// highlight rows: an inclusion score and a match-span lookup.
package pattern

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// Score ranks a positive match; lower distances are closer matches.
type Score struct {
	Distance int
}

// Match lists the rune positions of the matched characters.
type Match struct {
	Positions []int
}

// Contains reports whether rune position pos is part of the match.
func (m Match) Contains(pos int) bool {
	for _, p := range m.Positions {
		if p == pos {
			return true
		}
		if p > pos {
			return false
		}
	}
	return false
}

// Pattern is the capability consumed by list states.
type Pattern interface {
	Raw() string
	Score(text string) (Score, bool)
	Search(text string) (Match, bool)
}

// Fuzzy matches the query as a case and diacritic insensitive subsequence.
type Fuzzy struct {
	raw   string
	query string
}

// Parse builds a fuzzy pattern. Blank input yields nil, meaning "no filter".
func Parse(raw string) Pattern {
	query := strings.TrimSpace(raw)
	if query == "" {
		return nil
	}
	return &Fuzzy{raw: raw, query: query}
}

func (f *Fuzzy) Raw() string {
	return f.raw
}

func (f *Fuzzy) Score(text string) (Score, bool) {
	if text == "" {
		return Score{}, false
	}
	distance := fuzzy.RankMatchNormalizedFold(f.query, text)
	if distance < 0 {
		return Score{}, false
	}
	return Score{Distance: distance}, true
}

// Search locates the matched runes. Text and query are folded the way Score
// folds them, so every row Score keeps gets a highlight.
func (f *Fuzzy) Search(text string) (Match, bool) {
	if text == "" {
		return Match{}, false
	}
	folded, owner := fold(text)
	query, _ := fold(f.query)
	found := sfuzzy.Find(query, []string{folded})
	if len(found) == 0 || len(found[0].MatchedIndexes) == 0 {
		return Match{}, false
	}
	positions := make([]int, 0, len(found[0].MatchedIndexes))
	for _, idx := range found[0].MatchedIndexes {
		pos := owner[idx]
		if n := len(positions); n > 0 && positions[n-1] == pos {
			continue
		}
		positions = append(positions, pos)
	}
	return Match{Positions: positions}, true
}

// fold strips combining marks from text. owner maps each byte of the folded
// text to the rune position it came from in text.
func fold(text string) (string, []int) {
	var b strings.Builder
	owner := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		base := string(r)
		if r >= utf8.RuneSelf {
			var stripped strings.Builder
			for _, c := range norm.NFD.String(base) {
				if !unicode.Is(unicode.Mn, c) {
					stripped.WriteRune(c)
				}
			}
			base = stripped.String()
		}
		for range len(base) {
			owner = append(owner, pos)
		}
		b.WriteString(base)
		pos++
	}
	return b.String(), owner
}
