package domain

import "testing"

func TestCellIsLetterIsBlocked(t *testing.T) {
	letter := Cell{Type: CellTypeLetter, Grapheme: "ネ"}
	blocked := Cell{Type: CellTypeBlocked}

	if !letter.IsLetter() || letter.IsBlocked() {
		t.Errorf("letter cell classified wrong: %+v", letter)
	}
	if blocked.IsLetter() || !blocked.IsBlocked() {
		t.Errorf("blocked cell classified wrong: %+v", blocked)
	}
}

func TestStripAnswers(t *testing.T) {
	p := &Puzzle{
		ID:      "abc",
		Size:    7,
		Answers: map[string]string{"1-across": "ネコ"},
	}

	stripped := p.StripAnswers()
	if stripped.Answers != nil {
		t.Errorf("StripAnswers left answers populated: %v", stripped.Answers)
	}
	if p.Answers == nil {
		t.Error("StripAnswers mutated the original record")
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	p := &Puzzle{ID: "xyz"}
	if got := p.Title(); got != "xyz" {
		t.Errorf("Title() = %q, want fallback to ID %q", got, "xyz")
	}

	p.Clues.Across = []ClueEntry{{Number: 1, Clue: "feline pet"}}
	if got := p.Title(); got != "feline pet" {
		t.Errorf("Title() = %q, want %q", got, "feline pet")
	}
}
