package puzzle

import (
	"math/rand"
	"sort"

	"kurosuwado/internal/domain"
)

const maxAttempts = 100

// targetDensity is the fill ratio attempt selection aims for; reaching it
// alongside the word-count target ends the search early.
const targetDensity = 0.80

// minSize and maxSize bound the grid sizes Synthesize will attempt.
// Requests outside this range are clamped rather than rejected.
const (
	minSize = 5
	maxSize = 15
)

// clampSize forces n into [minSize, maxSize].
func clampSize(n int) int {
	if n < minSize {
		return minSize
	}
	if n > maxSize {
		return maxSize
	}
	return n
}

// minWordsFor returns the minimum placed-word count a result must reach
// for synthesis to be considered adequately dense, by grid size.
func minWordsFor(n int) int {
	switch {
	case n <= 7:
		return 6
	case n <= 10:
		return 18
	case n <= 12:
		return 25
	default:
		return 35
	}
}

// Result is the outcome of one synthesis attempt.
type Result struct {
	Grid    *Grid
	Placed  []domain.PlacedWord
	Density float64
}

// Synthesize runs the multi-attempt placement search described by the
// component design: pre-process candidates, then try up to 100
// independent randomized attempts, keeping the best by density and word
// count, exiting early once both the density and word-count targets are
// met. Fails with ErrInsufficientWords if, after pre-processing, no
// candidates remain or every attempt places zero words.
//
// size is clamped silently to [5,15] rather than rejected; callers that
// need to surface the clamp to a caller should compare the requested and
// clamped values themselves.
//
// Synthesize is a pure function of (candidates, size, seed): no I/O, no
// blocking, no timers. The same inputs always yield the same grid.
func Synthesize(candidates []domain.Candidate, size int, seed int64) (*Result, error) {
	size = clampSize(size)

	filtered := preprocess(candidates, size)
	if len(filtered) == 0 {
		return nil, ErrInsufficientWords
	}

	target := minWordsFor(size)
	rng := rand.New(rand.NewSource(seed))

	var best *Result
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result := runAttempt(filtered, size, rng)
		if result == nil {
			continue
		}
		if best == nil || isBetter(result, best) {
			best = result
		}
		if best.Density >= targetDensity && len(best.Placed) >= target {
			break
		}
	}

	if best == nil || len(best.Placed) == 0 {
		return nil, ErrInsufficientWords
	}
	return best, nil
}

// isBetter reports whether candidate should replace current as the best
// attempt: strictly higher density, or equal density and more words placed.
func isBetter(candidate, current *Result) bool {
	if candidate.Density > current.Density {
		return true
	}
	return candidate.Density == current.Density && len(candidate.Placed) > len(current.Placed)
}

// preprocess normalizes, length-filters, deduplicates (first occurrence
// wins), and stable-sorts candidates to prefer lengths 3-5 first, then
// shorter over longer within the remainder.
func preprocess(candidates []domain.Candidate, size int) []domain.Candidate {
	seen := make(map[string]bool)
	out := make([]domain.Candidate, 0, len(candidates))

	for _, c := range candidates {
		normalized := domain.NormalizeString(c.Answer)
		l := domain.Len(normalized)
		if l < 2 || l > size {
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true

		cc := c
		cc.Answer = normalized
		out = append(out, cc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lengthRank(domain.Len(out[i].Answer)) < lengthRank(domain.Len(out[j].Answer))
	})

	return out
}

// lengthRank orders 3-5 first (ascending within that band), then
// everything else by ascending length.
func lengthRank(l int) int {
	if l >= 3 && l <= 5 {
		return l - 3
	}
	if l < 3 {
		return 100 + l
	}
	return 200 + l
}

// runAttempt executes one seed/main-pass/edge-fill-pass cycle starting
// from an empty grid. Returns nil if even the seed placement fails.
func runAttempt(candidates []domain.Candidate, size int, rng *rand.Rand) *Result {
	shuffled := make([]domain.Candidate, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	builder := NewBuilder(size)

	first := shuffled[0]
	rest := shuffled[1:]
	firstGraphemes := domain.Normalize(first.Answer)
	row := size / 2
	col := (size - len(firstGraphemes)) / 2
	if col < 0 || !builder.CanPlace(firstGraphemes, row, col, domain.Across, false) {
		return nil
	}
	builder.Place(first, firstGraphemes, Placement{Row: row, Col: col, Orientation: domain.Across})

	unplaced := mainPass(builder, rest)
	edgeFillPass(builder, unplaced)

	return &Result{
		Grid:    builder.Grid(),
		Placed:  builder.Placed(),
		Density: builder.Grid().Density(),
	}
}

// mainPass offers each remaining candidate, in order, its best
// intersecting placement, and returns those that found none.
func mainPass(builder *Builder, candidates []domain.Candidate) []domain.Candidate {
	var unplaced []domain.Candidate
	for _, c := range candidates {
		graphemes := domain.Normalize(c.Answer)
		placements := builder.FindPlacements(graphemes, true)
		if len(placements) == 0 {
			unplaced = append(unplaced, c)
			continue
		}
		builder.Place(c, graphemes, placements[0])
	}
	return unplaced
}

// edgeFillPass offers short (<=3 grapheme) leftover candidates a
// non-intersecting placement, provided it touches the grid's border.
func edgeFillPass(builder *Builder, candidates []domain.Candidate) {
	size := builder.Grid().Size()
	for _, c := range candidates {
		graphemes := domain.Normalize(c.Answer)
		if len(graphemes) > 3 {
			continue
		}

		var best *Placement
		for _, p := range builder.FindPlacements(graphemes, false) {
			if !p.TouchesEdge(size, len(graphemes)) {
				continue
			}
			pCopy := p
			if best == nil || pCopy.Intersections > best.Intersections {
				best = &pCopy
			}
		}
		if best != nil {
			builder.Place(c, graphemes, *best)
		}
	}
}
