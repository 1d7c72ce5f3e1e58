package puzzle

import "kurosuwado/internal/domain"

// Placement is a candidate position for a word: where it starts, which
// way it runs, and how many existing letters it would cross. Intersections
// is the primary ranking signal FindPlacements uses to prefer placements
// that knit into the grid already built.
type Placement struct {
	Row, Col      int
	Orientation   domain.Orientation
	Intersections int
}

// TouchesEdge reports whether a placement of the given grapheme length on
// a grid of size touches the grid's border — its start or end row/col is
// 0 or size-1. The edge-fill pass uses this to keep non-intersecting
// placements anchored to the grid rather than floating in its interior.
func (p Placement) TouchesEdge(size, length int) bool {
	endRow, endCol := p.Row, p.Col
	if p.Orientation == domain.Down {
		endRow += length - 1
	} else {
		endCol += length - 1
	}
	last := size - 1
	return p.Row == 0 || p.Col == 0 || endRow == last || endCol == last
}

type letterPos struct {
	wordIdx int
	index   int
}

// Builder accumulates placed words onto a Grid, one at a time, keeping a
// letter index so crossing candidates can be found without rescanning the
// whole grid for every word.
type Builder struct {
	grid        *Grid
	placed      []domain.PlacedWord
	letterIndex map[domain.Grapheme][]letterPos
}

// NewBuilder wraps a fresh grid of the given size.
func NewBuilder(size int) *Builder {
	return &Builder{
		grid:        NewGrid(size),
		letterIndex: make(map[domain.Grapheme][]letterPos),
	}
}

// Grid returns the grid under construction.
func (b *Builder) Grid() *Grid { return b.grid }

// Placed returns the words placed so far, in placement order.
func (b *Builder) Placed() []domain.PlacedWord { return b.placed }

// CanPlace reports whether graphemes can be written starting at
// (row, col) running in orientation without violating any placement
// invariant:
//   - the run stays in bounds;
//   - every overlapped cell already holds the same grapheme;
//   - a cell the run would newly occupy has no letter neighbor
//     perpendicular to the run (no two parallel words touch side by side);
//   - the run does not extend an existing word (the cells immediately
//     before the start and after the end are blocked or off-grid);
//   - if requireIntersection is true, the run overlaps at least one
//     existing letter cell.
//
// This check is unconditional: the multi-attempt driver's edge-fill pass
// must satisfy it exactly like the main intersection pass. There is no
// separate, looser rule for edge fill.
func (b *Builder) CanPlace(graphemes []domain.Grapheme, row, col int, orientation domain.Orientation, requireIntersection bool) bool {
	n := len(graphemes)
	if n == 0 || row < 0 || col < 0 {
		return false
	}

	dr, dc := 0, 1
	if orientation == domain.Down {
		dr, dc = 1, 0
	}

	endRow := row + dr*(n-1)
	endCol := col + dc*(n-1)
	if !b.grid.InBounds(endRow, endCol) {
		return false
	}

	intersections := 0
	for i, gr := range graphemes {
		r, c := row+dr*i, col+dc*i
		cell := b.grid.At(r, c)

		if cell.IsLetter() {
			if cell.Grapheme != gr {
				return false
			}
			intersections++
			continue
		}

		// A cell the word would newly occupy must have no letter
		// neighbor perpendicular to the run.
		if orientation == domain.Across {
			if r > 0 && b.grid.At(r-1, c).IsLetter() {
				return false
			}
			if r < b.grid.Size()-1 && b.grid.At(r+1, c).IsLetter() {
				return false
			}
		} else {
			if c > 0 && b.grid.At(r, c-1).IsLetter() {
				return false
			}
			if c < b.grid.Size()-1 && b.grid.At(r, c+1).IsLetter() {
				return false
			}
		}
	}

	if requireIntersection && intersections == 0 {
		return false
	}

	// Don't extend an existing word past either end.
	if orientation == domain.Across {
		if col > 0 && b.grid.At(row, col-1).IsLetter() {
			return false
		}
		if endCol < b.grid.Size()-1 && b.grid.At(row, endCol+1).IsLetter() {
			return false
		}
	} else {
		if row > 0 && b.grid.At(row-1, col).IsLetter() {
			return false
		}
		if endRow < b.grid.Size()-1 && b.grid.At(endRow+1, col).IsLetter() {
			return false
		}
	}

	return true
}

// countIntersections counts the overlapped cells, used to rank placements
// once CanPlace has already accepted them.
func (b *Builder) countIntersections(graphemes []domain.Grapheme, row, col int, orientation domain.Orientation) int {
	dr, dc := 0, 1
	if orientation == domain.Down {
		dr, dc = 1, 0
	}
	n := 0
	for i := range graphemes {
		if b.grid.At(row+dr*i, col+dc*i).IsLetter() {
			n++
		}
	}
	return n
}

// FindPlacements enumerates legal placements for graphemes. The primary
// strategy iterates every currently-placed letter cell and, for each
// grapheme of graphemes matching that letter, computes the candidate
// position that would align them in each of the two orientations, then
// filters by CanPlace. If that yields nothing and requireIntersection is
// false, it falls back to scanning every (row, col) and orientation —
// the path the very first word, and any word sharing no letters with the
// grid so far, must take.
//
// Results are ordered by descending intersection count; callers choosing
// the first entry get the most-crossed legal placement.
func (b *Builder) FindPlacements(graphemes []domain.Grapheme, requireIntersection bool) []Placement {
	var out []Placement
	seen := make(map[Placement]bool)

	add := func(row, col int, orientation domain.Orientation) {
		if !b.CanPlace(graphemes, row, col, orientation, requireIntersection) {
			return
		}
		p := Placement{
			Row: row, Col: col, Orientation: orientation,
			Intersections: b.countIntersections(graphemes, row, col, orientation),
		}
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for i, gr := range graphemes {
		for _, lp := range b.letterIndex[gr] {
			pw := b.placed[lp.wordIdx]

			if pw.Orientation == domain.Across {
				add(pw.StartRow-i, pw.StartCol+lp.index, domain.Down)
			} else {
				add(pw.StartRow+lp.index, pw.StartCol-i, domain.Across)
			}
		}
	}

	if len(out) == 0 && !requireIntersection {
		size := b.grid.Size()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				add(row, col, domain.Across)
				add(row, col, domain.Down)
			}
		}
	}

	insertionSortByIntersections(out)
	return out
}

// insertionSortByIntersections sorts placements by descending
// intersection count, stable on ties. A plain insertion sort is plenty:
// candidate lists are never more than a few hundred entries long.
func insertionSortByIntersections(p []Placement) {
	for i := 1; i < len(p); i++ {
		j := i
		for j > 0 && p[j-1].Intersections < p[j].Intersections {
			p[j-1], p[j] = p[j], p[j-1]
			j--
		}
	}
}

// Place commits graphemes to the grid at the given placement and records
// it as a PlacedWord built from candidate, which must already carry the
// same grapheme length. Callers must have verified CanPlace first.
func (b *Builder) Place(candidate domain.Candidate, graphemes []domain.Grapheme, p Placement) domain.PlacedWord {
	b.grid.place(graphemes, p.Row, p.Col, p.Orientation == domain.Across)

	wordIdx := len(b.placed)
	for i, gr := range graphemes {
		b.letterIndex[gr] = append(b.letterIndex[gr], letterPos{wordIdx: wordIdx, index: i})
	}

	pw := domain.PlacedWord{
		Answer:      domain.NormalizeString(candidate.Answer),
		Clue:        candidate.Clue,
		ArticleRef:  candidate.ArticleRef,
		StartRow:    p.Row,
		StartCol:    p.Col,
		Orientation: p.Orientation,
		Length:      len(graphemes),
	}
	b.placed = append(b.placed, pw)
	return pw
}
