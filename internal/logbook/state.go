package logbook

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	_ "modernc.org/sqlite"
)

// Entry is one completed-session observation recorded offline, waiting to be
// synced to the server.
type Entry struct {
	ID          int64
	PerformedAt time.Time
	Data        engine.ExerciseData
	Synced      bool
}

// StateDB keeps the offline logbook in a local SQLite database so entries
// survive until a sync succeeds.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite logbook at dir/logbook.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating logbook dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "logbook.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening logbook db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise           TEXT NOT NULL,
		performed_at       TIMESTAMP NOT NULL,
		sets               INTEGER NOT NULL,
		reps               INTEGER NOT NULL,
		weight_kg          REAL NOT NULL,
		rating             INTEGER NOT NULL,
		equipment          TEXT NOT NULL,
		compound           INTEGER NOT NULL,
		prescribed_reps    INTEGER NOT NULL,
		target_rep_min     INTEGER NOT NULL,
		target_rep_max     INTEGER NOT NULL,
		consecutive_misses INTEGER NOT NULL DEFAULT 0,
		synced             INTEGER NOT NULL DEFAULT 0,
		created_at         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating entries table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// AddEntry records an observation. Returns the local entry ID.
func (s *StateDB) AddEntry(d engine.ExerciseData, performedAt time.Time) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO entries
		(exercise, performed_at, sets, reps, weight_kg, rating, equipment, compound,
		 prescribed_reps, target_rep_min, target_rep_max, consecutive_misses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Exercise, performedAt.UTC(), d.Sets, d.Reps, d.WeightKg, d.Rating,
		string(d.Equipment), boolToInt(d.Compound),
		d.PrescribedReps, d.TargetRepMin, d.TargetRepMax, d.ConsecutiveMisses)
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}
	return res.LastInsertId()
}

// PendingEntries returns unsynced entries, oldest first.
func (s *StateDB) PendingEntries() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT id, exercise, performed_at, sets, reps, weight_kg,
		rating, equipment, compound, prescribed_reps, target_rep_min, target_rep_max,
		consecutive_misses, synced
		FROM entries WHERE synced = 0 ORDER BY performed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying pending entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// LastEntry returns the most recent entry for an exercise, synced or not, so
// the CLI can prefill prior prescription state. Returns (nil, nil) when the
// exercise has no history.
func (s *StateDB) LastEntry(exercise string) (*Entry, error) {
	rows, err := s.db.Query(`SELECT id, exercise, performed_at, sets, reps, weight_kg,
		rating, equipment, compound, prescribed_reps, target_rep_min, target_rep_max,
		consecutive_misses, synced
		FROM entries WHERE exercise = ? ORDER BY performed_at DESC LIMIT 1`, exercise)
	if err != nil {
		return nil, fmt.Errorf("querying last entry: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// MarkSynced flags entries as delivered.
func (s *StateDB) MarkSynced(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	_, err := s.db.Exec(
		`UPDATE entries SET synced = 1 WHERE id IN (`+strings.Join(placeholders, ",")+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("marking entries synced: %w", err)
	}
	return nil
}

// Close closes the logbook database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var result []Entry
	for rows.Next() {
		var e Entry
		var equipment string
		var compound, synced int
		if err := rows.Scan(&e.ID, &e.Data.Exercise, &e.PerformedAt, &e.Data.Sets,
			&e.Data.Reps, &e.Data.WeightKg, &e.Data.Rating, &equipment, &compound,
			&e.Data.PrescribedReps, &e.Data.TargetRepMin, &e.Data.TargetRepMax,
			&e.Data.ConsecutiveMisses, &synced); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Data.Equipment = catalog.EquipmentType(equipment)
		e.Data.Compound = compound != 0
		e.Synced = synced != 0
		result = append(result, e)
	}
	return result, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
