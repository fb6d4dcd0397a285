package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/jackc/pgx/v5"
)

// ProgressionRow is one observation/prescription pair: the completed set
// data the user reported and the prescription the engine produced from it.
type ProgressionRow struct {
	UserID            int       `json:"user_id"`
	Exercise          string    `json:"exercise"`
	PerformedAt       time.Time `json:"performed_at"`
	Sets              int       `json:"sets"`
	Reps              int       `json:"reps"`
	WeightKg          float64   `json:"weight_kg"`
	Rating            int       `json:"rating"`
	Equipment         string    `json:"equipment"`
	ConsecutiveMisses int       `json:"consecutive_misses"`
	NewWeightKg       float64   `json:"new_weight_kg"`
	NewReps           int       `json:"new_reps"`
	Deload            bool      `json:"deload"`
}

// InsertProgressionRows batch-inserts progression log entries. Returns the
// count inserted.
func (db *DB) InsertProgressionRows(ctx context.Context, rows []ProgressionRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO progression_log (user_id, exercise, performed_at, sets, reps,
		weight_kg, rating, equipment, consecutive_misses, new_weight_kg, new_reps, deload) VALUES `
	args := make([]any, 0, len(rows)*12)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 12
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12,
		))
		args = append(args, r.UserID, r.Exercise, r.PerformedAt, r.Sets, r.Reps,
			r.WeightKg, r.Rating, r.Equipment, r.ConsecutiveMisses,
			r.NewWeightKg, r.NewReps, r.Deload)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting progression rows: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QueryProgressionLog retrieves progression entries in a date range, newest
// first, optionally filtered by exercise (partial, case-insensitive match).
func (db *DB) QueryProgressionLog(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]ProgressionRow, error) {
	query := `SELECT user_id, exercise, performed_at, sets, reps, weight_kg, rating,
		 equipment, consecutive_misses, new_weight_kg, new_reps, deload
		 FROM progression_log
		 WHERE performed_at >= $1 AND performed_at < $2 AND user_id = $3`
	args := []any{start, end, userID}
	if exerciseFilter != "" {
		query += ` AND exercise ILIKE $4`
		args = append(args, "%"+exerciseFilter+"%")
	}
	query += ` ORDER BY performed_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying progression log: %w", err)
	}
	defer rows.Close()

	var result []ProgressionRow
	for rows.Next() {
		var r ProgressionRow
		if err := rows.Scan(&r.UserID, &r.Exercise, &r.PerformedAt, &r.Sets, &r.Reps,
			&r.WeightKg, &r.Rating, &r.Equipment, &r.ConsecutiveMisses,
			&r.NewWeightKg, &r.NewReps, &r.Deload); err != nil {
			return nil, fmt.Errorf("scanning progression row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// LastPrescription returns the most recent prescription state for an
// exercise: the weight/reps to prescribe next and the running miss count
// the progression calculator needs as prior state. Returns (nil, nil) when
// the exercise has no history.
func (db *DB) LastPrescription(ctx context.Context, userID int, exercise string) (*ProgressionRow, error) {
	var r ProgressionRow
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, exercise, performed_at, sets, reps, weight_kg, rating,
		 equipment, consecutive_misses, new_weight_kg, new_reps, deload
		 FROM progression_log
		 WHERE user_id = $1 AND exercise = $2
		 ORDER BY performed_at DESC LIMIT 1`,
		userID, exercise).Scan(&r.UserID, &r.Exercise, &r.PerformedAt, &r.Sets, &r.Reps,
		&r.WeightKg, &r.Rating, &r.Equipment, &r.ConsecutiveMisses,
		&r.NewWeightKg, &r.NewReps, &r.Deload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last prescription: %w", err)
	}
	return &r, nil
}

// ExerciseProgressPoint is one point in an exercise's weight trajectory.
type ExerciseProgressPoint struct {
	PerformedAt time.Time `json:"performed_at"`
	WeightKg    float64   `json:"weight_kg"`
	Reps        int       `json:"reps"`
	Deload      bool      `json:"deload"`
}

// GetExerciseProgress returns an exercise's session-by-session trajectory,
// oldest first, for trend display.
func (db *DB) GetExerciseProgress(ctx context.Context, userID int, exercise string, since time.Time) ([]ExerciseProgressPoint, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT performed_at, weight_kg, reps, deload
		 FROM progression_log
		 WHERE user_id = $1 AND exercise = $2 AND performed_at >= $3
		 ORDER BY performed_at ASC`,
		userID, exercise, since)
	if err != nil {
		return nil, fmt.Errorf("querying exercise progress: %w", err)
	}
	defer rows.Close()

	var result []ExerciseProgressPoint
	for rows.Next() {
		var p ExerciseProgressPoint
		if err := rows.Scan(&p.PerformedAt, &p.WeightKg, &p.Reps, &p.Deload); err != nil {
			return nil, fmt.Errorf("scanning progress point: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// NewRowFromResult builds a log row from an observation and its result.
func NewRowFromResult(userID int, d engine.ExerciseData, res engine.ProgressionResult, at time.Time) ProgressionRow {
	return ProgressionRow{
		UserID:            userID,
		Exercise:          d.Exercise,
		PerformedAt:       at,
		Sets:              d.Sets,
		Reps:              d.Reps,
		WeightKg:          d.WeightKg,
		Rating:            d.Rating,
		Equipment:         string(d.Equipment),
		ConsecutiveMisses: d.ConsecutiveMisses,
		NewWeightKg:       res.NewWeightKg,
		NewReps:           res.NewReps,
		Deload:            res.Deload,
	}
}
