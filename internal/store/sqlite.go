package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"kurosuwado/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore is a Repository backed by a single "puzzles" table, storing
// each of the record's structured fields as a separate JSON column per
// the backend-independent persisted schema: grid_json, words_json,
// clues_json, answers_json alongside the queryable summary columns.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens a SQLite database at dsn. Use ":memory:" for an
// in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if !strings.Contains(dsn, ":memory:") {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Migrate runs the store's schema migration.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	upSQL, err := migrationsFS.ReadFile("migrations/001_initial.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Put stores p, creating or overwriting the record at p.ID.
func (s *SQLiteStore) Put(ctx context.Context, p *domain.Puzzle) error {
	gridJSON, err := json.Marshal(p.Grid)
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}
	wordsJSON, err := json.Marshal(p.Words)
	if err != nil {
		return fmt.Errorf("failed to marshal words: %w", err)
	}
	cluesJSON, err := json.Marshal(p.Clues)
	if err != nil {
		return fmt.Errorf("failed to marshal clues: %w", err)
	}
	answersJSON, err := json.Marshal(p.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, title, size, width, height, grid_json, words_json, clues_json, answers_json, word_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			size = excluded.size,
			width = excluded.width,
			height = excluded.height,
			grid_json = excluded.grid_json,
			words_json = excluded.words_json,
			clues_json = excluded.clues_json,
			answers_json = excluded.answers_json,
			word_count = excluded.word_count,
			created_at = excluded.created_at
	`, p.ID, p.Title(), p.Size, p.Size, p.Size, gridJSON, wordsJSON, cluesJSON, answersJSON, len(p.Words), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store puzzle: %w", err)
	}
	return nil
}

// Get retrieves the full record, including its answer table.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.Puzzle, error) {
	var (
		p                                                  domain.Puzzle
		gridJSON, wordsJSON, cluesJSON, answersJSON []byte
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, size, grid_json, words_json, clues_json, answers_json, created_at
		FROM puzzles WHERE id = ?
	`, id).Scan(&p.ID, &p.Size, &gridJSON, &wordsJSON, &cluesJSON, &answersJSON, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	if err := json.Unmarshal(gridJSON, &p.Grid); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grid: %w", err)
	}
	if err := json.Unmarshal(wordsJSON, &p.Words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words: %w", err)
	}
	if err := json.Unmarshal(cluesJSON, &p.Clues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clues: %w", err)
	}
	if err := json.Unmarshal(answersJSON, &p.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}

	return &p, nil
}

// List returns every stored record's listing projection, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, size, word_count, created_at FROM puzzles ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.Summary
	for rows.Next() {
		var sm domain.Summary
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.Size, &sm.WordCount, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle summary: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// Delete removes the record at id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete puzzle: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
