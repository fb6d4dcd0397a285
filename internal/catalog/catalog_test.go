package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultCatalogIsValid verifies the built-in data indexes cleanly:
// every pattern candidate resolves to a catalog exercise.
func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	for _, p := range c.Patterns("", "") {
		for _, name := range p.Exercises {
			if _, ok := c.Exercise(name); !ok {
				t.Errorf("pattern %s/%s references unknown exercise %q", p.Tag, p.Tier, name)
			}
		}
	}
}

// TestConflictsAreSymmetric verifies conflict lookups answer in both
// directions after indexing.
func TestConflictsAreSymmetric(t *testing.T) {
	c := Default()
	if !c.Conflicts("Barbell Back Squat", "Hack Squat Machine") {
		t.Error("expected squat/hack squat conflict")
	}
	if !c.Conflicts("Hack Squat Machine", "Barbell Back Squat") {
		t.Error("conflict table not symmetric")
	}
	if c.Conflicts("Barbell Back Squat", "Barbell Bench Press") {
		t.Error("unexpected squat/bench conflict")
	}
}

// TestClassifyEquipment verifies the name-substring classifier, including
// the barbell default for unmatched names.
func TestClassifyEquipment(t *testing.T) {
	cases := []struct {
		name string
		want EquipmentType
	}{
		{"Barbell Back Squat", EquipmentBarbell},
		{"Trap Bar Deadlift", EquipmentBarbell},
		{"Dumbbell Row", EquipmentDumbbell},
		{"Cable Face Pull", EquipmentCable},
		{"Machine Chest Press", EquipmentMachine},
		{"Leg Press", EquipmentMachine},
		{"Leg Extension", EquipmentMachine},
		{"Seated Hamstring Curl", EquipmentMachine},
		{"Weighted Dip", EquipmentBarbell}, // unmatched defaults to barbell
	}
	for _, c := range cases {
		if got := ClassifyEquipment(c.name); got != c.want {
			t.Errorf("ClassifyEquipment(%q) = %s, want %s", c.name, got, c.want)
		}
	}
}

// TestEquipmentFieldOverridesClassifier verifies an explicit equipment
// field on a catalog entry wins over name matching.
func TestEquipmentFieldOverridesClassifier(t *testing.T) {
	c := Default()
	// "Walking Lunge" would classify as barbell by default; the catalog
	// marks it bodyweight explicitly.
	if got := c.EquipmentFor("Walking Lunge"); got != EquipmentBodyweight {
		t.Errorf("EquipmentFor(Walking Lunge) = %s, want %s", got, EquipmentBodyweight)
	}
}

// TestBaseWeightByGender verifies the base-weight table keys by gender and
// reports missing entries.
func TestBaseWeightByGender(t *testing.T) {
	c := Default()
	male, ok := c.BaseWeight("Barbell Back Squat", GenderMale)
	if !ok || male != 40 {
		t.Errorf("male squat = %v (ok=%v), want 40", male, ok)
	}
	female, ok := c.BaseWeight("Barbell Back Squat", GenderFemale)
	if !ok || female != 25 {
		t.Errorf("female squat = %v (ok=%v), want 25", female, ok)
	}
	if _, ok := c.BaseWeight("Pull-Up", GenderMale); ok {
		t.Error("Pull-Up should have no base weight entry")
	}
}

// TestLoadYAMLCatalog verifies a catalog file loads and indexes.
func TestLoadYAMLCatalog(t *testing.T) {
	content := `
exercises:
  - name: "Safety Bar Squat"
    muscle_group: "quads"
    compound: true
patterns:
  - tag: "squat"
    tier: "primary"
    region: "lower"
    exercises: ["Safety Bar Squat"]
conflicts: []
base_weights:
  - exercise: "Safety Bar Squat"
    male: 35
    female: 22.5
rep_ranges: []
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Exercise("Safety Bar Squat"); !ok {
		t.Error("loaded catalog missing exercise")
	}
	if w, ok := c.BaseWeight("Safety Bar Squat", GenderFemale); !ok || w != 22.5 {
		t.Errorf("base weight = %v (ok=%v), want 22.5", w, ok)
	}
}

// TestNewRejectsUnknownPatternExercise verifies indexing fails loudly when
// a pattern references an exercise missing from the catalog.
func TestNewRejectsUnknownPatternExercise(t *testing.T) {
	_, err := New(Data{
		Patterns: []Pattern{{Tag: "squat", Tier: TierPrimary, Region: RegionLower, Exercises: []string{"Ghost Squat"}}},
	})
	if err == nil {
		t.Fatal("expected error for unknown pattern exercise")
	}
}
