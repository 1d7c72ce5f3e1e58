// Package service wires the synthesis core to the store and HTTP layers.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kurosuwado/internal/domain"
	"kurosuwado/internal/puzzle"
	"kurosuwado/internal/store"
)

// GenerateRequest is the producer interface's input: a size and a bag of
// candidate words to place.
type GenerateRequest struct {
	Size           int
	CandidateWords []domain.Candidate
}

// GenerateStats describes one synthesis run, echoed back to callers that
// ask for it (the generate CLI's -verbose trace).
type GenerateStats struct {
	Attempted  bool
	Elapsed    time.Duration
	WordCount  int
	Density    float64
	DeadBlocks puzzle.DeadBlockReport
}

// Generator synthesizes puzzles and persists them.
type Generator struct {
	store store.Repository
	seed  func() int64
}

// NewGenerator returns a Generator backed by repo. Puzzle IDs and synthesis
// seeds are derived at call time unless overridden by WithSeedFunc.
func NewGenerator(repo store.Repository) *Generator {
	return &Generator{store: repo, seed: func() int64 { return time.Now().UnixNano() }}
}

// WithSeedFunc overrides the seed source, for deterministic tests.
func (g *Generator) WithSeedFunc(seed func() int64) *Generator {
	g.seed = seed
	return g
}

// Generate synthesizes a puzzle from req, assigns it an ID and creation
// time, persists the full record (including its answer table), and
// returns the record with answers stripped, the form the player interface
// hands back to callers outside the persistence boundary.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*domain.Puzzle, GenerateStats, error) {
	start := time.Now()

	result, err := puzzle.Synthesize(req.CandidateWords, req.Size, g.seed())
	if err != nil {
		return nil, GenerateStats{}, fmt.Errorf("service: generate: %w", err)
	}

	record := puzzle.BuildPuzzle(uuid.NewString(), time.Now().UTC(), result)

	if err := g.store.Put(ctx, record); err != nil {
		return nil, GenerateStats{}, fmt.Errorf("service: persist puzzle: %w", err)
	}

	stats := GenerateStats{
		Attempted:  true,
		Elapsed:    time.Since(start),
		WordCount:  len(record.Words),
		Density:    result.Density,
		DeadBlocks: puzzle.AnalyzeDeadBlocks(result.Grid),
	}
	return record.StripAnswers(), stats, nil
}
