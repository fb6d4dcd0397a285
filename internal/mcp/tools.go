package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 90 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -90)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// splitList parses a comma-separated parameter into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// --- Tool definitions ---

var toolGenerateProgram = mcp.NewTool("generate_program",
	mcp.WithDescription("Generate a complete training program from user preferences. Selects conflict-free exercises, allocates sets under per-muscle-group volume caps, pairs exercises into supersets, and persists the result."),
	mcp.WithNumber("frequency", mcp.Required(), mcp.Description("Training days per week (2-6). 2-3 produces a full-body program, 4 an upper/lower split.")),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("STRENGTH", "HYPERTROPHY")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Training experience level"), mcp.Enum("BEGINNER", "INTERMEDIATE", "ADVANCED")),
	mcp.WithNumber("session_time_min", mcp.Required(), mcp.Description("Available minutes per session (25-120)")),
	mcp.WithNumber("exercise_count", mcp.Required(), mcp.Description("Exercises per workout (3-6)")),
	mcp.WithNumber("sets_per_exercise", mcp.Required(), mcp.Description("Working sets per exercise (2-4)")),
	mcp.WithString("focus_muscle_groups", mcp.Description("Comma-separated muscle groups to prioritize (e.g. 'chest, biceps')")),
)

var toolGetPrograms = mcp.NewTool("get_programs",
	mcp.WithDescription("List previously generated programs, newest first, without workout details."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of programs to return. Defaults to 20.")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Fetch one generated program by ID, including all workouts, supersets, and volume analysis."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program UUID")),
)

var toolCalculateStartingWeights = mcp.NewTool("calculate_starting_weights",
	mcp.WithDescription("Calculate beginner starting weights for a list of exercises from age and gender, rounded to the user's equipment increments. Exercises without a base weight start at bodyweight."),
	mcp.WithString("exercises", mcp.Required(), mcp.Description("Comma-separated exercise names (e.g. 'Barbell Back Squat, Barbell Bench Press')")),
	mcp.WithNumber("age", mcp.Required(), mcp.Description("User age in years")),
	mcp.WithString("gender", mcp.Required(), mcp.Description("Gender for the base-weight table"), mcp.Enum("male", "female")),
)

var toolCalculateProgression = mcp.NewTool("calculate_progression",
	mcp.WithDescription("Calculate the next prescription for an exercise from one completed session: add weight on high effort once the rep target is met, hold and nudge reps otherwise, deload after repeated rep-floor misses."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithNumber("sets", mcp.Required(), mcp.Description("Working sets completed")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Reps achieved on the working sets")),
	mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Weight used in kg")),
	mcp.WithNumber("rating", mcp.Required(), mcp.Description("Perceived effort, 1-10. 8+ counts as high effort.")),
	mcp.WithBoolean("compound", mcp.Description("Whether the lift is compound. Compound lifts progress at the prescribed reps; isolation lifts use double progression. Defaults to the catalog entry.")),
	mcp.WithNumber("prescribed_reps", mcp.Required(), mcp.Description("Reps that were prescribed for this session")),
	mcp.WithNumber("target_rep_min", mcp.Required(), mcp.Description("Rep range floor")),
	mcp.WithNumber("target_rep_max", mcp.Required(), mcp.Description("Rep range ceiling")),
	mcp.WithNumber("consecutive_misses", mcp.Description("Sessions below the rep floor so far. Defaults to 0.")),
)

var toolGetProgressionLog = mcp.NewTool("get_progression_log",
	mcp.WithDescription("Query recorded progression history: completed-session observations and the prescriptions computed from them."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("exercise", mcp.Description("Filter by exercise name (partial match, e.g. 'bench press')")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercises with muscle group, compound flag, equipment type, and rep ranges."),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group (e.g. 'quads', 'chest')")),
)

// --- Tool handlers ---

func (h *handlers) generateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs := engine.UserPreferences{
		Frequency:         req.GetInt("frequency", 0),
		Goal:              engine.Goal(req.GetString("goal", "")),
		Experience:        engine.Experience(req.GetString("experience", "")),
		SessionTimeMin:    req.GetInt("session_time_min", 0),
		ExerciseCount:     req.GetInt("exercise_count", 0),
		SetsPerExercise:   req.GetInt("sets_per_exercise", 0),
		FocusMuscleGroups: splitList(req.GetString("focus_muscle_groups", "")),
	}

	uid := UserIDFromContext(ctx)
	id, program, err := h.ds.CreateProgram(ctx, uid, prefs)
	if err != nil {
		h.log.Error("mcp generate_program", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"id": id, "program": program})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	records, err := h.ds.ListPrograms(ctx, uid, req.GetInt("limit", 20))
	if err != nil {
		h.log.Error("mcp get_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid program ID"), nil
	}

	uid := UserIDFromContext(ctx)
	rec, err := h.ds.GetProgram(ctx, id, uid)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if rec == nil {
		return mcp.NewToolResultError("program not found"), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) calculateStartingWeights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	namesStr, err := req.RequireString("exercises")
	if err != nil {
		return mcp.NewToolResultError("exercises parameter is required"), nil
	}
	names := splitList(namesStr)
	if len(names) == 0 {
		return mcp.NewToolResultError("exercises list is empty"), nil
	}

	refs := make([]engine.ExerciseRef, len(names))
	for i, name := range names {
		refs[i] = engine.ExerciseRef{ID: name, Name: name}
	}

	uid := UserIDFromContext(ctx)
	weights, err := h.ds.StartingWeights(ctx, uid, refs,
		req.GetInt("age", 0), catalog.Gender(req.GetString("gender", "")))
	if err != nil {
		h.log.Error("mcp calculate_starting_weights", "error", err)
		return mcp.NewToolResultError("calculation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(weights)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) calculateProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	cat := h.eng.Catalog()
	compound := false
	if v, given := req.GetArguments()["compound"]; given {
		if b, ok := v.(bool); ok {
			compound = b
		}
	} else if ex, ok := cat.Exercise(exercise); ok {
		compound = ex.Compound
	}

	d := engine.ExerciseData{
		Exercise:          exercise,
		Sets:              req.GetInt("sets", 0),
		Reps:              req.GetInt("reps", 0),
		WeightKg:          req.GetFloat("weight_kg", 0),
		Rating:            req.GetInt("rating", 0),
		Equipment:         cat.EquipmentFor(exercise),
		Compound:          compound,
		PrescribedReps:    req.GetInt("prescribed_reps", 0),
		TargetRepMin:      req.GetInt("target_rep_min", 0),
		TargetRepMax:      req.GetInt("target_rep_max", 0),
		ConsecutiveMisses: req.GetInt("consecutive_misses", 0),
	}

	uid := UserIDFromContext(ctx)
	res, err := h.ds.Progression(ctx, uid, d)
	if err != nil {
		h.log.Error("mcp calculate_progression", "error", err)
		return mcp.NewToolResultError("calculation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgressionLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	rows, err := h.ds.ProgressionLog(ctx, start, end, uid, req.GetString("exercise", ""))
	if err != nil {
		h.log.Error("mcp get_progression_log", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rows)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := req.GetString("muscle_group", "")
	result, err := mcp.NewToolResultJSON(h.catalogEntries(filter))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
