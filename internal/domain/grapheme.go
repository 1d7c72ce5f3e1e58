// Package domain contains the core domain model for the crossword puzzle
// synthesis core: graphemes, cells, grids, and the puzzle record.
package domain

import (
	"golang.org/x/text/width"
)

// Grapheme is one normalized placement unit: a full-width katakana
// character, the long-vowel mark ー, a digit, or a Latin capital.
// Graphemes are compared by equality only.
type Grapheme string

// smallKana folds small katakana to their full-sized counterparts (§4.1 step 3).
var smallKana = map[rune]rune{
	'ァ': 'ア', 'ィ': 'イ', 'ゥ': 'ウ', 'ェ': 'エ', 'ォ': 'オ',
	'ッ': 'ツ', 'ャ': 'ヤ', 'ュ': 'ユ', 'ョ': 'ヨ', 'ヮ': 'ワ',
}

// Normalize canonicalizes a Japanese answer or user-input string into a
// grapheme sequence suitable for cell-by-cell comparison.
//
// Normalization is total and idempotent: Normalize(Normalize(x)) always
// equals Normalize(x). It is applied in five steps:
//  1. half-width katakana (as found in pasted article text or older feed
//     encodings) is widened to full-width, via golang.org/x/text/width —
//     scoped to the half-width katakana block only, since width.Widen
//     also widens plain ASCII and would pre-empt step 4 below;
//  2. hiragana U+3041..U+3096 is mapped to its katakana equivalent;
//  3. small katakana fold to their full-sized counterparts;
//  4. Latin letters uppercase;
//  5. everything else (the prolonged-sound mark ー, digits, other katakana)
//     passes through unchanged.
func Normalize(s string) []Grapheme {
	graphemes := make([]Grapheme, 0, len(s))
	for _, r := range s {
		if isHalfWidthKatakana(r) {
			for _, w := range width.Widen.String(string(r)) {
				graphemes = append(graphemes, Grapheme(normalizeRune(w)))
			}
			continue
		}
		graphemes = append(graphemes, Grapheme(normalizeRune(r)))
	}
	return graphemes
}

// isHalfWidthKatakana reports whether r falls in the half-width katakana
// block (U+FF61..U+FF9F), the only range step 1 needs to widen.
func isHalfWidthKatakana(r rune) bool {
	return r >= 0xFF61 && r <= 0xFF9F
}

// NormalizeString is Normalize joined back into a single string, the form
// stored on a PlacedWord and compared against in Check/Hint.
func NormalizeString(s string) string {
	graphemes := Normalize(s)
	out := make([]rune, 0, len(graphemes))
	for _, g := range graphemes {
		out = append(out, []rune(string(g))...)
	}
	return string(out)
}

func normalizeRune(r rune) rune {
	if r >= 0x3041 && r <= 0x3096 {
		r += 0x60
	}
	if folded, ok := smallKana[r]; ok {
		r = folded
	}
	if r >= 'a' && r <= 'z' {
		r = r - 'a' + 'A'
	}
	return r
}

// Len returns the grapheme count of a normalized answer — the unit used by
// every downstream length check and bound (2 <= L <= N).
func Len(s string) int {
	return len(Normalize(s))
}
