package puzzle

import (
	"sort"
	"strconv"
	"time"

	"kurosuwado/internal/domain"
)

// AssignNumbers walks the grid in reading order (row-major, top-to-bottom,
// left-to-right) and assigns the next sequential integer, starting at 1,
// to every cell that starts an across or down word. A cell starting both
// shares one number. It mutates grid's cells in place and returns, for
// each placed word, the number assigned to its starting cell.
func AssignNumbers(grid *Grid, placed []domain.PlacedWord) []domain.PlacedWord {
	size := grid.Size()
	cells := grid.Cells()
	numberAt := make(map[domain.Position]int)

	next := 1
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !cells[r][c].IsLetter() {
				continue
			}
			if !startsAcross(cells, size, r, c) && !startsDown(cells, size, r, c) {
				continue
			}
			cells[r][c].Number = next
			numberAt[domain.Position{Row: r, Col: c}] = next
			next++
		}
	}

	out := make([]domain.PlacedWord, len(placed))
	for i, pw := range placed {
		pw.Number = numberAt[domain.Position{Row: pw.StartRow, Col: pw.StartCol}]
		out[i] = pw
	}
	return out
}

func startsAcross(cells [][]domain.Cell, size, r, c int) bool {
	leftBlocked := c == 0 || cells[r][c-1].IsBlocked()
	hasNext := c < size-1 && cells[r][c+1].IsLetter()
	return leftBlocked && hasNext
}

func startsDown(cells [][]domain.Cell, size, r, c int) bool {
	topBlocked := r == 0 || cells[r-1][c].IsBlocked()
	hasNext := r < size-1 && cells[r+1][c].IsLetter()
	return topBlocked && hasNext
}

// BuildClues buckets numbered placed words by orientation into ascending-
// number clue lists.
func BuildClues(placed []domain.PlacedWord) domain.Clues {
	var clues domain.Clues
	for _, pw := range placed {
		entry := domain.ClueEntry{
			Number:     pw.Number,
			Clue:       pw.Clue,
			Length:     pw.Length,
			Row:        pw.StartRow,
			Col:        pw.StartCol,
			ArticleRef: pw.ArticleRef,
		}
		if pw.Orientation == domain.Across {
			clues.Across = append(clues.Across, entry)
		} else {
			clues.Down = append(clues.Down, entry)
		}
	}

	sort.Slice(clues.Across, func(i, j int) bool { return clues.Across[i].Number < clues.Across[j].Number })
	sort.Slice(clues.Down, func(i, j int) bool { return clues.Down[i].Number < clues.Down[j].Number })
	return clues
}

// BuildPuzzle numbers result's grid, builds the clue lists, and records
// the stored answer table keyed by "{number}-{orientation}". id and
// createdAt are supplied by the caller; everything else is a pure
// function of result.
func BuildPuzzle(id string, createdAt time.Time, result *Result) *domain.Puzzle {
	numbered := AssignNumbers(result.Grid, result.Placed)

	answers := make(map[string]string, len(numbered))
	for _, pw := range numbered {
		answers[answerKey(pw.Number, pw.Orientation)] = pw.Answer
	}

	return &domain.Puzzle{
		ID:        id,
		CreatedAt: createdAt,
		Size:      result.Grid.Size(),
		Grid:      result.Grid.Cells(),
		Words:     numbered,
		Clues:     BuildClues(numbered),
		Answers:   answers,
	}
}

// answerKey formats the "{number}-{orientation}" key used by Check, Hint,
// and the persisted answer table.
func answerKey(number int, orientation domain.Orientation) string {
	return strconv.Itoa(number) + "-" + string(orientation)
}
