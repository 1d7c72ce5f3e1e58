package puzzle

import (
	"testing"

	"kurosuwado/internal/domain"
)

func mustPlace(t *testing.T, b *Builder, answer, clue string, row, col int, orientation domain.Orientation) domain.PlacedWord {
	t.Helper()
	graphemes := domain.Normalize(answer)
	if !b.CanPlace(graphemes, row, col, orientation, false) {
		t.Fatalf("CanPlace(%q, %d, %d, %v) = false, want true", answer, row, col, orientation)
	}
	return b.Place(domain.Candidate{Answer: answer, Clue: clue}, graphemes, Placement{Row: row, Col: col, Orientation: orientation})
}

func TestCanPlaceIntersection(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 3, 2, domain.Across)

	// コト crosses at the コ cell: ネコ occupies (3,2)=ネ (3,3)=コ.
	graphemes := domain.Normalize("コト")
	if !b.CanPlace(graphemes, 3, 3, domain.Down, true) {
		t.Error("expected コト to cross ネコ at the コ cell")
	}
}

func TestCanPlaceRejectsMismatch(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 3, 2, domain.Across)

	graphemes := domain.Normalize("トリ")
	if b.CanPlace(graphemes, 3, 3, domain.Down, true) {
		t.Error("expected トリ to be rejected: does not share a grapheme with コ at that cell")
	}
}

func TestCanPlaceRejectsAdjacency(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 0, 0, domain.Across)

	// リス directly below, parallel, non-intersecting: violates adjacency.
	graphemes := domain.Normalize("リス")
	if b.CanPlace(graphemes, 1, 0, domain.Across, false) {
		t.Error("expected side-by-side parallel placement to be rejected")
	}
}

func TestCanPlaceRejectsExtension(t *testing.T) {
	b := NewBuilder(7)
	mustPlace(t, b, "ネコ", "cat", 0, 0, domain.Across)

	// Placing a word starting right after ネコ's end would extend it.
	graphemes := domain.Normalize("トリ")
	if b.CanPlace(graphemes, 0, 2, domain.Across, false) {
		t.Error("expected placement extending an existing word to be rejected")
	}
}

func TestCanPlaceRequireIntersection(t *testing.T) {
	b := NewBuilder(7)
	graphemes := domain.Normalize("ネコ")
	if b.CanPlace(graphemes, 0, 0, domain.Across, true) {
		t.Error("expected requireIntersection=true to reject a placement with no crossing on an empty grid")
	}
	if !b.CanPlace(graphemes, 0, 0, domain.Across, false) {
		t.Error("expected requireIntersection=false to accept the same placement")
	}
}

func TestFindPlacementsFallsBackWhenEmpty(t *testing.T) {
	b := NewBuilder(7)
	graphemes := domain.Normalize("ネコ")
	placements := b.FindPlacements(graphemes, false)
	if len(placements) == 0 {
		t.Fatal("expected fallback full-grid scan to produce placements on an empty grid")
	}
}

func TestFindPlacementsRequireIntersectionEmptyGrid(t *testing.T) {
	b := NewBuilder(7)
	graphemes := domain.Normalize("ネコ")
	placements := b.FindPlacements(graphemes, true)
	if len(placements) != 0 {
		t.Errorf("expected no intersecting placements on an empty grid, got %d", len(placements))
	}
}

func TestFindPlacementsOrderedByIntersections(t *testing.T) {
	b := NewBuilder(9)
	mustPlace(t, b, "ネコ", "cat", 3, 2, domain.Across)
	mustPlace(t, b, "コト", "thing", 3, 3, domain.Down)

	graphemes := domain.Normalize("トリ")
	placements := b.FindPlacements(graphemes, true)
	if len(placements) == 0 {
		t.Fatal("expected at least one placement crossing the existing words")
	}
	for i := 1; i < len(placements); i++ {
		if placements[i].Intersections > placements[i-1].Intersections {
			t.Errorf("placements not sorted by descending intersections at index %d", i)
		}
	}
}

func TestPlacementTouchesEdge(t *testing.T) {
	p := Placement{Row: 0, Col: 3, Orientation: domain.Across}
	if !p.TouchesEdge(7, 3) {
		t.Error("placement starting at row 0 should touch the edge")
	}

	p2 := Placement{Row: 3, Col: 3, Orientation: domain.Across}
	if p2.TouchesEdge(7, 2) {
		t.Error("interior placement should not touch the edge")
	}

	p3 := Placement{Row: 3, Col: 5, Orientation: domain.Across}
	if !p3.TouchesEdge(7, 2) {
		t.Error("placement ending at the last column should touch the edge")
	}
}
