// Package db provides PostgreSQL storage for parsed resume records.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-parser/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the parsed_resumes table when it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS parsed_resumes (
			id UUID PRIMARY KEY,
			source_file TEXT NOT NULL DEFAULT '',
			content JSONB NOT NULL,
			tables_detected INT NOT NULL DEFAULT 0,
			parsed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveResume stores one parsed resume and returns its record ID
func (db *DB) SaveResume(ctx context.Context, resume *types.ParsedResume) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO parsed_resumes (id, source_file, content, tables_detected, parsed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, resume.SourceFile, jsonBytes, resume.TablesDetected, resume.ParsedDate,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves one parsed resume by record ID. Returns nil when no
// record with that ID exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.ParsedResume, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM parsed_resumes WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var resume types.ParsedResume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	return &resume, nil
}

// ResumeSummary is one row of ListResumes output.
type ResumeSummary struct {
	ID             uuid.UUID
	SourceFile     string
	TablesDetected int
	ParsedAt       time.Time
}

// ListResumes returns stored resume records, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]ResumeSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, source_file, tables_detected, parsed_at
		 FROM parsed_resumes
		 ORDER BY parsed_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.SourceFile, &s.TablesDetected, &s.ParsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resume rows: %w", err)
	}
	return summaries, nil
}

// DeleteResume removes one stored record. Deleting a missing ID is not an error.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM parsed_resumes WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	return nil
}
