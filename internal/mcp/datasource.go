package mcp

import (
	"context"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts program state for MCP tools. Local (engine + Postgres
// in-process) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	CreateProgram(ctx context.Context, userID int, prefs engine.UserPreferences) (uuid.UUID, *engine.GeneratedProgram, error)
	GetProgram(ctx context.Context, id uuid.UUID, userID int) (*storage.ProgramRecord, error)
	ListPrograms(ctx context.Context, userID, limit int) ([]storage.ProgramRecord, error)
	StartingWeights(ctx context.Context, userID int, refs []engine.ExerciseRef, age int, gender catalog.Gender) ([]engine.ExerciseWeight, error)
	Progression(ctx context.Context, userID int, d engine.ExerciseData) (*engine.ProgressionResult, error)
	ProgressionLog(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]storage.ProgressionRow, error)
}

// Local serves MCP tools from the in-process engine and database.
type Local struct {
	DB  *storage.DB
	Eng *engine.Engine
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

func (l *Local) CreateProgram(ctx context.Context, userID int, prefs engine.UserPreferences) (uuid.UUID, *engine.GeneratedProgram, error) {
	program, err := l.Eng.GenerateProgram(prefs)
	if err != nil {
		return uuid.Nil, nil, err
	}
	id, err := l.DB.InsertProgram(ctx, userID, program)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, program, nil
}

func (l *Local) GetProgram(ctx context.Context, id uuid.UUID, userID int) (*storage.ProgramRecord, error) {
	return l.DB.GetProgram(ctx, id, userID)
}

func (l *Local) ListPrograms(ctx context.Context, userID, limit int) ([]storage.ProgramRecord, error) {
	return l.DB.ListPrograms(ctx, userID, limit)
}

func (l *Local) StartingWeights(ctx context.Context, userID int, refs []engine.ExerciseRef, age int, gender catalog.Gender) ([]engine.ExerciseWeight, error) {
	settings, err := l.DB.GetEquipmentSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return l.Eng.CalculateStartingWeights(refs, age, gender, settings)
}

func (l *Local) Progression(ctx context.Context, userID int, d engine.ExerciseData) (*engine.ProgressionResult, error) {
	settings, err := l.DB.GetEquipmentSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &engine.ConfigurationError{Missing: "user equipment settings"}
	}
	res := l.Eng.CalculateProgression(d, *settings)
	return &res, nil
}

func (l *Local) ProgressionLog(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]storage.ProgressionRow, error) {
	return l.DB.QueryProgressionLog(ctx, start, end, userID, exerciseFilter)
}
