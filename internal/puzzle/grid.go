// Package puzzle is the crossword synthesis core: the grid model, the
// placement engine, the multi-attempt synthesizer, clue numbering and
// export, and the post-build answer-check/hint contract. Every type here
// is a pure function of its inputs — no I/O, no blocking, no logging.
package puzzle

import "kurosuwado/internal/domain"

// Grid is an N x N cell matrix plus placement accounting. It is owned
// exclusively by one synthesis attempt and is never shared across
// attempts or goroutines.
type Grid struct {
	size  int
	cells [][]domain.Cell
}

// NewGrid returns an N x N grid initialised to all-Blocked.
func NewGrid(n int) *Grid {
	cells := make([][]domain.Cell, n)
	for r := range cells {
		cells[r] = make([]domain.Cell, n)
		for c := range cells[r] {
			cells[r][c] = domain.Cell{Type: domain.CellTypeBlocked}
		}
	}
	return &Grid{size: n, cells: cells}
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the cell at (row, col). Callers must check InBounds first;
// out-of-bounds access panics, matching Go slice semantics.
func (g *Grid) At(row, col int) domain.Cell {
	return g.cells[row][col]
}

// Cells exposes the backing matrix for read-only iteration (numbering,
// export, diagnostics).
func (g *Grid) Cells() [][]domain.Cell {
	return g.cells
}

// place writes a contiguous run of letter cells. Must be preceded by a
// successful CanPlace check; behavior otherwise undefined.
func (g *Grid) place(graphemes []domain.Grapheme, row, col int, horizontal bool) {
	for i, gr := range graphemes {
		r, c := row, col
		if horizontal {
			c += i
		} else {
			r += i
		}
		g.cells[r][c] = domain.Cell{Type: domain.CellTypeLetter, Grapheme: gr}
	}
}

// Density is the letter-cell count divided by N^2.
func (g *Grid) Density() float64 {
	if g.size == 0 {
		return 0
	}
	letters := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsLetter() {
				letters++
			}
		}
	}
	return float64(letters) / float64(g.size*g.size)
}
