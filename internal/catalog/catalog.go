// Package catalog holds the exercise catalog: the movement-pattern taxonomy,
// the exercise conflict table, per-gender base weights, and per-exercise rep
// ranges. The catalog is loaded once into an immutable, pre-indexed Catalog
// and injected into the engine; nothing in this package mutates after New.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EquipmentType classifies how an exercise is loaded. It drives which
// per-user weight increment applies.
type EquipmentType string

// Equipment type constants.
const (
	EquipmentBarbell    EquipmentType = "barbell"
	EquipmentDumbbell   EquipmentType = "dumbbell"
	EquipmentCable      EquipmentType = "cable"
	EquipmentMachine    EquipmentType = "machine"
	EquipmentBodyweight EquipmentType = "bodyweight"
)

// Tier splits patterns into compound anchors and accessory filler.
type Tier string

// Pattern tiers.
const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
)

// Region splits patterns by body region for upper/lower programming.
type Region string

// Body regions.
const (
	RegionUpper Region = "upper"
	RegionLower Region = "lower"
)

// Gender keys the base-weight table.
type Gender string

// Gender constants.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Exercise is one catalog entry.
type Exercise struct {
	Name        string        `yaml:"name"`
	MuscleGroup string        `yaml:"muscle_group"`
	Compound    bool          `yaml:"compound"`
	// Equipment, when set, overrides name-based classification. Entries
	// without it fall back to ClassifyEquipment on the display name.
	Equipment EquipmentType `yaml:"equipment,omitempty"`
}

// Pattern is an ordered candidate list for one movement pattern.
type Pattern struct {
	Tag       string   `yaml:"tag"`
	Tier      Tier     `yaml:"tier"`
	Region    Region   `yaml:"region"`
	Exercises []string `yaml:"exercises"`
}

// BaseWeight is a starting-weight table row, in kilograms.
type BaseWeight struct {
	Exercise string  `yaml:"exercise"`
	Male     float64 `yaml:"male"`
	Female   float64 `yaml:"female"`
}

// RepRange carries the prescribed rep-range strings per training goal.
type RepRange struct {
	Exercise    string `yaml:"exercise"`
	Strength    string `yaml:"strength"`
	Hypertrophy string `yaml:"hypertrophy"`
}

// Data is the raw, YAML-loadable catalog content.
type Data struct {
	Exercises   []Exercise    `yaml:"exercises"`
	Patterns    []Pattern     `yaml:"patterns"`
	Conflicts   [][]string    `yaml:"conflicts"`
	BaseWeights []BaseWeight  `yaml:"base_weights"`
	RepRanges   []RepRange    `yaml:"rep_ranges"`
}

// Catalog is the indexed, read-only view the engine consumes.
type Catalog struct {
	exercises   map[string]Exercise
	patterns    []Pattern
	conflicts   map[string]map[string]bool
	baseWeights map[string]BaseWeight
	repRanges   map[string]RepRange
}

// New indexes raw catalog data. Conflict pairs are stored symmetrically so
// a single lookup answers either direction.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		exercises:   make(map[string]Exercise, len(data.Exercises)),
		patterns:    data.Patterns,
		conflicts:   make(map[string]map[string]bool),
		baseWeights: make(map[string]BaseWeight, len(data.BaseWeights)),
		repRanges:   make(map[string]RepRange, len(data.RepRanges)),
	}

	for _, ex := range data.Exercises {
		if ex.Name == "" {
			return nil, fmt.Errorf("catalog: exercise with empty name")
		}
		c.exercises[ex.Name] = ex
	}

	for _, p := range data.Patterns {
		for _, name := range p.Exercises {
			if _, ok := c.exercises[name]; !ok {
				return nil, fmt.Errorf("catalog: pattern %q references unknown exercise %q", p.Tag, name)
			}
		}
	}

	for _, pair := range data.Conflicts {
		if len(pair) != 2 {
			return nil, fmt.Errorf("catalog: conflict entry must name exactly two exercises, got %d", len(pair))
		}
		c.addConflict(pair[0], pair[1])
		c.addConflict(pair[1], pair[0])
	}

	for _, bw := range data.BaseWeights {
		c.baseWeights[bw.Exercise] = bw
	}
	for _, rr := range data.RepRanges {
		c.repRanges[rr.Exercise] = rr
	}

	return c, nil
}

func (c *Catalog) addConflict(a, b string) {
	if c.conflicts[a] == nil {
		c.conflicts[a] = make(map[string]bool)
	}
	c.conflicts[a][b] = true
}

// Load reads a YAML catalog file and indexes it.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return New(data)
}

// Exercise returns the catalog entry for a name.
func (c *Catalog) Exercise(name string) (Exercise, bool) {
	ex, ok := c.exercises[name]
	return ex, ok
}

// Exercises returns all catalog entries in pattern order, deduplicated.
func (c *Catalog) Exercises() []Exercise {
	seen := make(map[string]bool, len(c.exercises))
	var out []Exercise
	for _, p := range c.patterns {
		for _, name := range p.Exercises {
			if !seen[name] {
				seen[name] = true
				out = append(out, c.exercises[name])
			}
		}
	}
	return out
}

// Patterns returns patterns matching the given tier and region filters.
// A zero-value filter matches everything.
func (c *Catalog) Patterns(tier Tier, region Region) []Pattern {
	var out []Pattern
	for _, p := range c.patterns {
		if tier != "" && p.Tier != tier {
			continue
		}
		if region != "" && p.Region != region {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PatternByTag returns the pattern with the given tag and tier.
func (c *Catalog) PatternByTag(tag string, tier Tier) (Pattern, bool) {
	for _, p := range c.patterns {
		if p.Tag == tag && p.Tier == tier {
			return p, true
		}
	}
	return Pattern{}, false
}

// Conflicts reports whether two exercises must not share a session.
func (c *Catalog) Conflicts(a, b string) bool {
	return c.conflicts[a][b]
}

// BaseWeight returns the starting weight for an exercise and gender.
// Exercises absent from the table report ok=false; callers treat them as
// bodyweight movements starting at zero.
func (c *Catalog) BaseWeight(exercise string, gender Gender) (float64, bool) {
	bw, ok := c.baseWeights[exercise]
	if !ok {
		return 0, false
	}
	if gender == GenderFemale {
		return bw.Female, true
	}
	return bw.Male, true
}

// RepRange returns the rep-range entry for an exercise, if listed.
func (c *Catalog) RepRange(exercise string) (RepRange, bool) {
	rr, ok := c.repRanges[exercise]
	return rr, ok
}

// EquipmentFor resolves an exercise's equipment type: the explicit catalog
// field wins, otherwise the display name is classified by substring.
func (c *Catalog) EquipmentFor(name string) EquipmentType {
	if ex, ok := c.exercises[name]; ok && ex.Equipment != "" {
		return ex.Equipment
	}
	return ClassifyEquipment(name)
}

// ClassifyEquipment infers equipment type from an exercise display name.
// Unmatched names default to barbell, the most common loading scheme.
func ClassifyEquipment(name string) EquipmentType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "barbell"), strings.Contains(n, "trap bar"):
		return EquipmentBarbell
	case strings.Contains(n, "dumbbell"):
		return EquipmentDumbbell
	case strings.Contains(n, "cable"):
		return EquipmentCable
	case strings.Contains(n, "machine"),
		strings.Contains(n, "leg press"),
		strings.Contains(n, "leg extension"),
		strings.Contains(n, "hamstring curl"):
		return EquipmentMachine
	default:
		return EquipmentBarbell
	}
}
