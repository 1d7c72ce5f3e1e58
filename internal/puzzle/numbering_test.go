package puzzle

import (
	"testing"

	"kurosuwado/internal/domain"
)

// TestAssignNumbersReadingOrder reproduces scenario S6: a 5x5 grid with
// an across word at (0,0), a down word at (0,2), and an across word at
// (2,0) must number 1, 2, 3 respectively.
func TestAssignNumbersReadingOrder(t *testing.T) {
	b := NewBuilder(5)
	mustPlace(t, b, "サクラ", "cherry blossom", 0, 0, domain.Across)
	mustPlace(t, b, "ラクダ", "camel", 0, 2, domain.Down)
	mustPlace(t, b, "カラダ", "body", 2, 0, domain.Across)

	numbered := AssignNumbers(b.Grid(), b.Placed())

	byStart := make(map[domain.Position]int)
	for _, pw := range numbered {
		byStart[domain.Position{Row: pw.StartRow, Col: pw.StartCol}] = pw.Number
	}

	if byStart[domain.Position{Row: 0, Col: 0}] != 1 {
		t.Errorf("(0,0) numbered %d, want 1", byStart[domain.Position{Row: 0, Col: 0}])
	}
	if byStart[domain.Position{Row: 0, Col: 2}] != 2 {
		t.Errorf("(0,2) numbered %d, want 2", byStart[domain.Position{Row: 0, Col: 2}])
	}
	if byStart[domain.Position{Row: 2, Col: 0}] != 3 {
		t.Errorf("(2,0) numbered %d, want 3", byStart[domain.Position{Row: 2, Col: 0}])
	}
}

func TestAssignNumbersSharedStart(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 3, 2, domain.Across)
	mustPlace(t, b, "ネズミ", "mouse", 3, 2, domain.Down)

	numbered := AssignNumbers(b.Grid(), b.Placed())
	if numbered[0].Number != numbered[1].Number {
		t.Errorf("words sharing a starting cell must share a number: got %d and %d", numbered[0].Number, numbered[1].Number)
	}
}

func TestBuildCluesOrderedAscending(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 3, 2, domain.Across)
	mustPlace(t, b, "コト", "thing", 3, 3, domain.Down)

	numbered := AssignNumbers(b.Grid(), b.Placed())
	clues := BuildClues(numbered)

	for i := 1; i < len(clues.Across); i++ {
		if clues.Across[i].Number < clues.Across[i-1].Number {
			t.Error("across clues not in ascending number order")
		}
	}
	for i := 1; i < len(clues.Down); i++ {
		if clues.Down[i].Number < clues.Down[i-1].Number {
			t.Error("down clues not in ascending number order")
		}
	}
}
