package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/logbook"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "LiftPlan server URL (e.g. https://liftplan.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("LIFTPLAN_API_KEY"), "API key for the sync endpoint")
	login := flag.String("login", "local", "login name entries are recorded under")
	stateDir := flag.String("state-dir", "", "logbook directory (default ~/.liftplan)")
	sync := flag.Bool("sync", false, "push pending entries to the server and exit")
	version := flag.Bool("version", false, "print version and exit")

	exercise := flag.String("exercise", "", "exercise name")
	sets := flag.Int("sets", 3, "working sets completed")
	reps := flag.Int("reps", 0, "reps achieved on the working sets")
	weight := flag.Float64("weight", 0, "weight used in kg")
	rating := flag.Int("rating", 0, "perceived effort, 1-10")
	prescribed := flag.Int("prescribed", 0, "reps prescribed for this session (0: use last entry)")
	repMin := flag.Int("rep-min", 0, "rep range floor (0: use last entry)")
	repMax := flag.Int("rep-max", 0, "rep range ceiling (0: use last entry)")
	misses := flag.Int("misses", 0, "consecutive rep-floor misses so far (0: use last entry)")
	flag.Parse()

	if *version {
		fmt.Println("liftplan-logbook", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dir := *stateDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(homeDir, ".liftplan")
	}

	state, err := logbook.OpenStateDB(dir)
	if err != nil {
		log.Error("failed to open logbook", "dir", dir, "error", err)
		os.Exit(1)
	}
	defer state.Close()

	var client *logbook.Client
	if *serverURL != "" {
		client = logbook.NewClient(strings.TrimRight(*serverURL, "/"), *apiKey, *login)
	}

	eng := engine.New(catalog.Default(), engine.DefaultConfig())
	lb := logbook.New(state, client, eng, engine.DefaultEquipmentSettings(), log)

	if *sync {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -server is required for -sync\n")
			os.Exit(1)
		}
		stats, err := lb.Sync()
		if err != nil {
			log.Error("sync failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Synced %d of %d pending entries (%d duplicates)\n", stats.Synced, stats.Pending, stats.Rejected)
		return
	}

	if *exercise == "" || *reps == 0 || *rating == 0 {
		fmt.Fprintf(os.Stderr, "Usage: liftplan-logbook -exercise <name> -reps N -rating N [-weight KG] [flags]\n")
		fmt.Fprintf(os.Stderr, "       liftplan-logbook -sync -server <URL> -api-key <key>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cat := eng.Catalog()
	compound := false
	if ex, ok := cat.Exercise(*exercise); ok {
		compound = ex.Compound
	}

	data := engine.ExerciseData{
		Exercise:          *exercise,
		Sets:              *sets,
		Reps:              *reps,
		WeightKg:          *weight,
		Rating:            *rating,
		Equipment:         cat.EquipmentFor(*exercise),
		Compound:          compound,
		PrescribedReps:    *prescribed,
		TargetRepMin:      *repMin,
		TargetRepMax:      *repMax,
		ConsecutiveMisses: *misses,
	}

	result, err := lb.Record(data, time.Now())
	if err != nil {
		log.Error("failed to record entry", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded %s: %dx%d @ %.1fkg (effort %d)\n", *exercise, *sets, *reps, *weight, *rating)
	if result.Deload {
		fmt.Printf("Next session: DELOAD to %.1fkg x %d (%s)\n", result.NewWeightKg, result.NewReps, result.Reason)
	} else {
		fmt.Printf("Next session: %.1fkg x %d (%s)\n", result.NewWeightKg, result.NewReps, result.Reason)
	}
}
