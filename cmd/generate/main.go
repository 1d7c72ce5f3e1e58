// Command generate synthesizes a crossword puzzle from a candidate word
// list read from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"kurosuwado/internal/domain"
	"kurosuwado/internal/service"
	"kurosuwado/internal/store"
)

func main() {
	_ = godotenv.Load()

	input := flag.String("input", "", "path to a JSON file of {size, candidate_words} (required)")
	output := flag.String("output", "", "output file for the puzzle record (default: stdout)")
	timeout := flag.Duration("timeout", 30*time.Second, "generation timeout")
	maxAttempts := flag.Int("max-attempts", 100, "informational only: the synthesizer always tries up to 100 attempts per run")
	verbose := flag.Bool("verbose", false, "print generation stats to stderr")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		os.Exit(1)
	}
	if *maxAttempts != 100 {
		fmt.Fprintf(os.Stderr, "Warning: -max-attempts=%d ignored, the synthesizer caps at 100\n", *maxAttempts)
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", *input, err)
		os.Exit(1)
	}

	var req struct {
		Size           int                `json:"size"`
		CandidateWords []domain.Candidate `json:"candidate_words"`
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid candidate JSON: %v\n", err)
		os.Exit(1)
	}

	trace(*verbose, "synthesizing a %dx%d grid from %s candidate words", req.Size, req.Size, humanize.Comma(int64(len(req.CandidateWords))))

	repo := store.NewMemoryStore()
	gen := service.NewGenerator(repo)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	type outcome struct {
		record *domain.Puzzle
		stats  service.GenerateStats
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		record, stats, err := gen.Generate(ctx, service.GenerateRequest{
			Size:           req.Size,
			CandidateWords: req.CandidateWords,
		})
		done <- outcome{record: record, stats: stats, err: err}
	}()

	var result outcome
	select {
	case result = <-done:
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "Error: generation timed out")
		os.Exit(1)
	}

	if result.err != nil {
		fmt.Fprintf(os.Stderr, "Error: generation failed: %v\n", result.err)
		os.Exit(1)
	}

	trace(*verbose, "done in %v: %s words placed, %.0f%% density",
		result.stats.Elapsed, humanize.Comma(int64(result.stats.WordCount)), result.stats.Density*100)
	trace(*verbose, "dead blocks: %.0f%% of grid, longest run %d, largest cluster %d cells",
		result.stats.DeadBlocks.BlockPercentage, max(result.stats.DeadBlocks.MaxConsecutiveRow, result.stats.DeadBlocks.MaxConsecutiveCol), result.stats.DeadBlocks.LargestCluster)

	full, err := repo.Get(ctx, result.record.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read back generated puzzle: %v\n", err)
		os.Exit(1)
	}

	jsonData, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode puzzle: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, jsonData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write output: %v\n", err)
			os.Exit(1)
		}
		trace(*verbose, "puzzle written to %s", *output)
	} else {
		fmt.Println(string(jsonData))
	}
}

func trace(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	prefix := "> "
	if isatty.IsTerminal(os.Stderr.Fd()) {
		prefix = "\033[2m> \033[0m"
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
