package puzzle

import (
	"errors"
	"testing"

	"kurosuwado/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSynthesizeTrivialSeed(t *testing.T) {
	candidates := []domain.Candidate{
		{Answer: "ネコ", Clue: "cat"},
		{Answer: "コト", Clue: "thing"},
		{Answer: "トリ", Clue: "bird"},
	}

	result, err := Synthesize(candidates, 7, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(result.Placed) == 0 {
		t.Fatal("expected at least one placed word")
	}
	assertInvariants(t, result)
}

func TestSynthesizeInsufficientWords(t *testing.T) {
	// Scenario S4: a single length-1 candidate is filtered out entirely.
	_, err := Synthesize([]domain.Candidate{{Answer: "ア", Clue: "a"}}, 7, 1)
	if !errors.Is(err, ErrInsufficientWords) {
		t.Errorf("expected ErrInsufficientWords, got %v", err)
	}
}

func TestSynthesizeClampsOutOfRangeSize(t *testing.T) {
	// Below minSize clamps up to 5 rather than failing.
	below, err := Synthesize([]domain.Candidate{{Answer: "ネコ", Clue: "cat"}}, 4, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if below.Grid.Size() != minSize {
		t.Errorf("expected size clamped to %d, got %d", minSize, below.Grid.Size())
	}

	// Above maxSize clamps down to 15 rather than failing.
	candidates := []domain.Candidate{
		{Answer: "ネコ", Clue: "cat"},
		{Answer: "コト", Clue: "thing"},
		{Answer: "トリ", Clue: "bird"},
	}
	above, err := Synthesize(candidates, 20, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if above.Grid.Size() != maxSize {
		t.Errorf("expected size clamped to %d, got %d", maxSize, above.Grid.Size())
	}
}

func TestSynthesizeDeterministicUnderSeed(t *testing.T) {
	candidates := []domain.Candidate{
		{Answer: "ネコ", Clue: "cat"},
		{Answer: "コト", Clue: "thing"},
		{Answer: "トリ", Clue: "bird"},
		{Answer: "イヌ", Clue: "dog"},
		{Answer: "スイカ", Clue: "watermelon"},
	}

	first, err := Synthesize(candidates, 9, 42)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	second, err := Synthesize(candidates, 9, 42)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if len(first.Placed) != len(second.Placed) {
		t.Fatalf("same seed produced different word counts: %d vs %d", len(first.Placed), len(second.Placed))
	}
	for i := range first.Placed {
		if first.Placed[i] != second.Placed[i] {
			t.Errorf("same seed produced different placement at index %d: %+v vs %+v", i, first.Placed[i], second.Placed[i])
		}
	}
}

func TestSynthesizeNormalizesHiraganaCandidates(t *testing.T) {
	candidates := []domain.Candidate{
		{Answer: "ねこ", Clue: "cat"},
		{Answer: "ことば", Clue: "word"},
		{Answer: "とり", Clue: "bird"},
	}
	result, err := Synthesize(candidates, 7, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	for _, pw := range result.Placed {
		for _, r := range pw.Answer {
			if r >= 0x3041 && r <= 0x3096 {
				t.Errorf("placed answer %q retains hiragana", pw.Answer)
			}
		}
	}
}

func TestSynthesizeDeduplicatesCandidates(t *testing.T) {
	candidates := []domain.Candidate{
		{Answer: "ネコ", Clue: "cat", ArticleRef: strPtr("first")},
		{Answer: "ネコ", Clue: "duplicate", ArticleRef: strPtr("second")},
		{Answer: "コト", Clue: "thing"},
	}
	result, err := Synthesize(candidates, 7, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	count := 0
	for _, pw := range result.Placed {
		if pw.Answer == "ネコ" {
			count++
			if pw.Clue != "cat" {
				t.Errorf("expected first occurrence to win, got clue %q", pw.Clue)
			}
		}
	}
	if count > 1 {
		t.Errorf("expected ネコ placed at most once, placed %d times", count)
	}
}

// assertInvariants checks the universal invariants from the testable
// properties: adjacency, termination, and answer consistency.
func assertInvariants(t *testing.T, result *Result) {
	t.Helper()
	grid := result.Grid
	size := grid.Size()

	for _, pw := range result.Placed {
		dr, dc := 0, 1
		if pw.Orientation == domain.Down {
			dr, dc = 1, 0
		}

		graphemes := domain.Normalize(pw.Answer)
		for i, gr := range graphemes {
			r, c := pw.StartRow+dr*i, pw.StartCol+dc*i
			cell := grid.At(r, c)
			if !cell.IsLetter() || cell.Grapheme != gr {
				t.Errorf("placed word %q mismatched grid at (%d,%d): cell=%+v", pw.Answer, r, c, cell)
			}
		}

		beforeR, beforeC := pw.StartRow-dr, pw.StartCol-dc
		if beforeR >= 0 && beforeC >= 0 && beforeR < size && beforeC < size {
			if grid.At(beforeR, beforeC).IsLetter() {
				t.Errorf("word %q has a letter immediately before its start", pw.Answer)
			}
		}

		endR, endC := pw.StartRow+dr*(len(graphemes)-1), pw.StartCol+dc*(len(graphemes)-1)
		afterR, afterC := endR+dr, endC+dc
		if afterR >= 0 && afterC >= 0 && afterR < size && afterC < size {
			if grid.At(afterR, afterC).IsLetter() {
				t.Errorf("word %q has a letter immediately after its end", pw.Answer)
			}
		}
	}
}
