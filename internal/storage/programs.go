package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProgramRecord is a persisted generated program. The program body is
// stored as the engine's JSON output; the engine result is immutable so the
// stored payload is the source of truth for what was prescribed.
type ProgramRecord struct {
	ID        uuid.UUID               `json:"id"`
	UserID    int                     `json:"user_id"`
	CreatedAt time.Time               `json:"created_at"`
	Type      engine.ProgramType      `json:"type"`
	Goal      engine.Goal             `json:"goal"`
	Frequency int                     `json:"frequency"`
	Program   *engine.GeneratedProgram `json:"program"`
}

// InsertProgram persists a generated program and returns its ID.
func (db *DB) InsertProgram(ctx context.Context, userID int, program *engine.GeneratedProgram) (uuid.UUID, error) {
	payload, err := json.Marshal(program)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding program: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO programs (id, user_id, program_type, goal, frequency, payload)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, userID, string(program.Type), string(program.Goal), program.Frequency, payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting program: %w", err)
	}
	return id, nil
}

// GetProgram fetches one program by ID, scoped to the user.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID, userID int) (*ProgramRecord, error) {
	var rec ProgramRecord
	var payload []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, created_at, program_type, goal, frequency, payload
		 FROM programs WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.Type, &rec.Goal, &rec.Frequency, &payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}

	rec.Program = &engine.GeneratedProgram{}
	if err := json.Unmarshal(payload, rec.Program); err != nil {
		return nil, fmt.Errorf("decoding program payload: %w", err)
	}
	return &rec, nil
}

// ListPrograms returns a user's programs, newest first, without payloads.
func (db *DB) ListPrograms(ctx context.Context, userID int, limit int) ([]ProgramRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, created_at, program_type, goal, frequency
		 FROM programs WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []ProgramRecord
	for rows.Next() {
		var rec ProgramRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.Type, &rec.Goal, &rec.Frequency); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
