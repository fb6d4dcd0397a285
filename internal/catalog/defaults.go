package catalog

// Default returns the built-in catalog. Deployments can replace it with a
// YAML file via the config's catalog.path setting; the built-in data is the
// reference set the engine's tests run against.
func Default() *Catalog {
	c, err := New(defaultData)
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

var defaultData = Data{
	Exercises: []Exercise{
		// Lower body
		{Name: "Barbell Back Squat", MuscleGroup: "quads", Compound: true},
		{Name: "Goblet Squat", MuscleGroup: "quads", Compound: true, Equipment: EquipmentDumbbell},
		{Name: "Leg Press", MuscleGroup: "quads", Compound: true},
		{Name: "Hack Squat Machine", MuscleGroup: "quads", Compound: true},
		{Name: "Barbell Deadlift", MuscleGroup: "hamstrings", Compound: true},
		{Name: "Trap Bar Deadlift", MuscleGroup: "hamstrings", Compound: true},
		{Name: "Barbell Romanian Deadlift", MuscleGroup: "hamstrings", Compound: true},
		{Name: "Hip Thrust Machine", MuscleGroup: "glutes", Compound: true},
		{Name: "Walking Lunge", MuscleGroup: "quads", Compound: true, Equipment: EquipmentBodyweight},
		{Name: "Leg Extension", MuscleGroup: "quads"},
		{Name: "Seated Hamstring Curl", MuscleGroup: "hamstrings"},
		{Name: "Standing Calf Raise Machine", MuscleGroup: "calves"},

		// Upper push
		{Name: "Barbell Bench Press", MuscleGroup: "chest", Compound: true},
		{Name: "Dumbbell Bench Press", MuscleGroup: "chest", Compound: true},
		{Name: "Machine Chest Press", MuscleGroup: "chest", Compound: true},
		{Name: "Barbell Overhead Press", MuscleGroup: "shoulders", Compound: true},
		{Name: "Dumbbell Shoulder Press", MuscleGroup: "shoulders", Compound: true},
		{Name: "Incline Dumbbell Press", MuscleGroup: "chest", Compound: true},
		{Name: "Cable Triceps Pushdown", MuscleGroup: "triceps"},
		{Name: "Dumbbell Lateral Raise", MuscleGroup: "shoulders"},

		// Upper pull
		{Name: "Pull-Up", MuscleGroup: "back", Compound: true, Equipment: EquipmentBodyweight},
		{Name: "Lat Pulldown Machine", MuscleGroup: "back", Compound: true},
		{Name: "Barbell Row", MuscleGroup: "back", Compound: true},
		{Name: "Dumbbell Row", MuscleGroup: "back", Compound: true},
		{Name: "Seated Cable Row", MuscleGroup: "back", Compound: true},
		{Name: "Cable Face Pull", MuscleGroup: "shoulders"},
		{Name: "Dumbbell Biceps Curl", MuscleGroup: "biceps"},
		{Name: "Cable Biceps Curl", MuscleGroup: "biceps"},
	},

	Patterns: []Pattern{
		{Tag: "squat", Tier: TierPrimary, Region: RegionLower, Exercises: []string{
			"Barbell Back Squat", "Leg Press", "Goblet Squat", "Hack Squat Machine",
		}},
		{Tag: "hinge", Tier: TierPrimary, Region: RegionLower, Exercises: []string{
			"Barbell Deadlift", "Barbell Romanian Deadlift", "Trap Bar Deadlift", "Hip Thrust Machine",
		}},
		{Tag: "push", Tier: TierPrimary, Region: RegionUpper, Exercises: []string{
			"Barbell Bench Press", "Machine Chest Press", "Dumbbell Bench Press", "Barbell Overhead Press",
		}},
		{Tag: "pull", Tier: TierPrimary, Region: RegionUpper, Exercises: []string{
			"Barbell Row", "Lat Pulldown Machine", "Pull-Up", "Seated Cable Row",
		}},
		{Tag: "squat", Tier: TierSecondary, Region: RegionLower, Exercises: []string{
			"Leg Extension", "Walking Lunge", "Standing Calf Raise Machine",
		}},
		{Tag: "hinge", Tier: TierSecondary, Region: RegionLower, Exercises: []string{
			"Seated Hamstring Curl",
		}},
		{Tag: "push", Tier: TierSecondary, Region: RegionUpper, Exercises: []string{
			"Incline Dumbbell Press", "Dumbbell Shoulder Press", "Cable Triceps Pushdown", "Dumbbell Lateral Raise",
		}},
		{Tag: "pull", Tier: TierSecondary, Region: RegionUpper, Exercises: []string{
			"Dumbbell Row", "Cable Face Pull", "Dumbbell Biceps Curl", "Cable Biceps Curl",
		}},
	},

	// Pairs that should not share a session: near-identical stimulus or the
	// same station loaded two ways.
	Conflicts: [][]string{
		{"Barbell Back Squat", "Hack Squat Machine"},
		{"Barbell Back Squat", "Goblet Squat"},
		{"Leg Press", "Hack Squat Machine"},
		{"Barbell Deadlift", "Trap Bar Deadlift"},
		{"Barbell Deadlift", "Barbell Romanian Deadlift"},
		{"Barbell Bench Press", "Dumbbell Bench Press"},
		{"Barbell Bench Press", "Machine Chest Press"},
		{"Dumbbell Bench Press", "Incline Dumbbell Press"},
		{"Barbell Overhead Press", "Dumbbell Shoulder Press"},
		{"Pull-Up", "Lat Pulldown Machine"},
		{"Barbell Row", "Dumbbell Row"},
		{"Barbell Row", "Seated Cable Row"},
		{"Dumbbell Biceps Curl", "Cable Biceps Curl"},
	},

	// Starting weights in kg for an untrained lifter. Bodyweight movements
	// (Pull-Up, Walking Lunge) are deliberately absent: no entry means a
	// starting weight of zero.
	BaseWeights: []BaseWeight{
		{Exercise: "Barbell Back Squat", Male: 40, Female: 25},
		{Exercise: "Goblet Squat", Male: 12, Female: 8},
		{Exercise: "Leg Press", Male: 60, Female: 35},
		{Exercise: "Hack Squat Machine", Male: 40, Female: 25},
		{Exercise: "Barbell Deadlift", Male: 50, Female: 30},
		{Exercise: "Trap Bar Deadlift", Male: 50, Female: 30},
		{Exercise: "Barbell Romanian Deadlift", Male: 40, Female: 25},
		{Exercise: "Hip Thrust Machine", Male: 40, Female: 30},
		{Exercise: "Leg Extension", Male: 25, Female: 15},
		{Exercise: "Seated Hamstring Curl", Male: 25, Female: 15},
		{Exercise: "Standing Calf Raise Machine", Male: 40, Female: 25},
		{Exercise: "Barbell Bench Press", Male: 30, Female: 17.5},
		{Exercise: "Dumbbell Bench Press", Male: 12, Female: 7},
		{Exercise: "Machine Chest Press", Male: 25, Female: 15},
		{Exercise: "Barbell Overhead Press", Male: 20, Female: 12.5},
		{Exercise: "Dumbbell Shoulder Press", Male: 8, Female: 5},
		{Exercise: "Incline Dumbbell Press", Male: 10, Female: 6},
		{Exercise: "Cable Triceps Pushdown", Male: 15, Female: 10},
		{Exercise: "Dumbbell Lateral Raise", Male: 5, Female: 3},
		{Exercise: "Lat Pulldown Machine", Male: 30, Female: 20},
		{Exercise: "Barbell Row", Male: 30, Female: 20},
		{Exercise: "Dumbbell Row", Male: 14, Female: 8},
		{Exercise: "Seated Cable Row", Male: 30, Female: 20},
		{Exercise: "Cable Face Pull", Male: 15, Female: 10},
		{Exercise: "Dumbbell Biceps Curl", Male: 7, Female: 4},
		{Exercise: "Cable Biceps Curl", Male: 12.5, Female: 7.5},
	},

	RepRanges: []RepRange{
		{Exercise: "Barbell Back Squat", Strength: "4-6", Hypertrophy: "8-12"},
		{Exercise: "Barbell Deadlift", Strength: "4-6", Hypertrophy: "6-10"},
		{Exercise: "Trap Bar Deadlift", Strength: "4-6", Hypertrophy: "6-10"},
		{Exercise: "Barbell Bench Press", Strength: "4-6", Hypertrophy: "8-12"},
		{Exercise: "Barbell Overhead Press", Strength: "4-6", Hypertrophy: "8-12"},
		{Exercise: "Barbell Row", Strength: "4-6", Hypertrophy: "8-12"},
		{Exercise: "Pull-Up", Strength: "4-6", Hypertrophy: "6-10"},
		{Exercise: "Leg Extension", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Seated Hamstring Curl", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Standing Calf Raise Machine", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Cable Triceps Pushdown", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Dumbbell Lateral Raise", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Cable Face Pull", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Dumbbell Biceps Curl", Strength: "6-8", Hypertrophy: "10-15"},
		{Exercise: "Cable Biceps Curl", Strength: "6-8", Hypertrophy: "10-15"},
	},
}
