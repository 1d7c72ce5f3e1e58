package puzzle

import (
	"fmt"
	"strings"

	"kurosuwado/internal/domain"
)

// hintPlaceholder is the full-width underscore used for every unrevealed
// grapheme of a hint.
const hintPlaceholder = "＿"

// CheckResult is the outcome of comparing submitted answers against a
// puzzle's stored answer table.
type CheckResult struct {
	Correct   []string `json:"correct"`
	Incorrect []string `json:"incorrect"`
}

// Check compares userAnswers, keyed "{number}-{orientation}", against
// record's stored answers. Keys absent from userAnswers are silently
// omitted from the result; keys in userAnswers that match no stored
// answer are silently ignored. Returns ErrNotFound if record carries no
// answer table (a stripped record was passed by mistake).
func Check(record *domain.Puzzle, userAnswers map[string]string) (CheckResult, error) {
	if record.Answers == nil {
		return CheckResult{}, ErrNotFound
	}

	var result CheckResult
	for key, stored := range record.Answers {
		submitted, ok := userAnswers[key]
		if !ok {
			continue
		}
		if domain.NormalizeString(submitted) == stored {
			result.Correct = append(result.Correct, key)
		} else {
			result.Incorrect = append(result.Incorrect, key)
		}
	}
	return result, nil
}

// HintResult is the outcome of revealing one grapheme of a stored answer.
type HintResult struct {
	Hint     string `json:"hint"`
	Revealed int    `json:"revealed"`
	Total    int    `json:"total"`
}

// Hint looks up the stored answer for "{number}-{orientation}" and
// returns its first grapheme followed by (length-1) full-width
// underscores. Fails with ErrUnknownClue if record's answer table has no
// entry for the key, or ErrNotFound if record carries no answer table.
func Hint(record *domain.Puzzle, number int, orientation domain.Orientation) (HintResult, error) {
	if record.Answers == nil {
		return HintResult{}, ErrNotFound
	}

	key := answerKey(number, orientation)
	answer, ok := record.Answers[key]
	if !ok {
		return HintResult{}, fmt.Errorf("%w: %s", ErrUnknownClue, key)
	}

	graphemes := domain.Normalize(answer)
	total := len(graphemes)

	var b strings.Builder
	b.WriteString(string(graphemes[0]))
	for i := 1; i < total; i++ {
		b.WriteString(hintPlaceholder)
	}

	return HintResult{Hint: b.String(), Revealed: 1, Total: total}, nil
}
