// Package validate provides JSON schema and semantic validation for
// generation requests and puzzle records.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"kurosuwado/internal/domain"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var generationRequestSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemasFS.ReadFile("schemas/generation_request.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read generation request schema: %v", err))
	}
	if err := compiler.AddResource("generation_request.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("failed to add generation request schema: %v", err))
	}

	generationRequestSchema, err = compiler.Compile("generation_request.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile generation request schema: %v", err))
	}
}

// ValidationError is a single validation failure with path context.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no errors"
	}
	var msgs []string
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// GenerationRequest is the producer interface's input: a requested grid
// size and a bag of candidate words.
type GenerationRequest struct {
	Size           int                `json:"size"`
	CandidateWords []domain.Candidate `json:"candidate_words"`
}

// ValidateGenerationRequestJSON validates raw JSON against the generation
// request schema and, if it passes, unmarshals and returns it.
func ValidateGenerationRequestJSON(data []byte) (*GenerationRequest, ValidationErrors) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ValidationErrors{{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	if err := generationRequestSchema.Validate(doc); err != nil {
		return nil, schemaErrorToValidationErrors(err)
	}

	var req GenerationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, ValidationErrors{{Message: fmt.Sprintf("failed to parse generation request: %v", err)}}
	}

	return &req, nil
}

func schemaErrorToValidationErrors(err error) ValidationErrors {
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		return extractValidationErrors(ve)
	}
	return ValidationErrors{{Message: err.Error()}}
}

func extractValidationErrors(ve *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors
	if ve.Message != "" {
		errors = append(errors, ValidationError{Path: ve.InstanceLocation, Message: ve.Message})
	}
	for _, cause := range ve.Causes {
		errors = append(errors, extractValidationErrors(cause)...)
	}
	return errors
}

// ValidatePuzzleSemantic checks structural invariants a JSON schema cannot
// express: a rectangular, N x N grid, and every letter cell belonging to
// at least one clue entry.
func ValidatePuzzleSemantic(p *domain.Puzzle) ValidationErrors {
	var errors ValidationErrors

	if len(p.Grid) != p.Size {
		errors = append(errors, ValidationError{
			Path:    "/grid",
			Message: fmt.Sprintf("grid has %d rows, want %d (size)", len(p.Grid), p.Size),
		})
	}
	for i, row := range p.Grid {
		if len(row) != p.Size {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("/grid/%d", i),
				Message: fmt.Sprintf("row has %d columns, want %d (size)", len(row), p.Size),
			})
		}
	}

	covered := make(map[domain.Position]bool)
	for _, entry := range p.Clues.Across {
		for i := 0; i < entry.Length; i++ {
			covered[domain.Position{Row: entry.Row, Col: entry.Col + i}] = true
		}
	}
	for _, entry := range p.Clues.Down {
		for i := 0; i < entry.Length; i++ {
			covered[domain.Position{Row: entry.Row + i, Col: entry.Col}] = true
		}
	}

	for r, row := range p.Grid {
		for c, cell := range row {
			if cell.IsLetter() && !covered[domain.Position{Row: r, Col: c}] {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("/grid/%d/%d", r, c),
					Message: "letter cell is not part of any clue entry",
				})
			}
		}
	}

	return errors
}
