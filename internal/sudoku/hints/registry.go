package hints

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
)

// Detector inspects b and returns the first applicable hint for its
// technique, or nil if none applies. Detectors are pure: they never
// mutate b.
type Detector func(b *Board) *Hint

// Descriptor pairs a technique name and contractual difficulty with its
// detector. The registry is ordered by ascending Difficulty, matching
// spec §4.3's canonical table, and is the source TechniqueDifficulty reads
// from. DifficultyToCategory uses its own fixed band limits and does not
// read the registry.
type Descriptor struct {
	Name       string
	Difficulty int
	Category   core.Category
	Enabled    bool
	Detect     Detector
}

var unitsAll = topology.Default.Units

// Registry is the difficulty-ordered technique battery. Index order is
// the tie-break order spec §5 requires when two detectors could apply at
// the same difficulty: the two error entries (incorrect_value,
// missing_candidate) both have difficulty 0 and are tried in the order
// listed; every other entry has a distinct difficulty.
var Registry = []Descriptor{
	{Name: "incorrect_value", Difficulty: 0, Category: core.CategoryError, Enabled: true, Detect: detectIncorrectValue},
	{Name: "missing_candidate", Difficulty: 0, Category: core.CategoryError, Enabled: true, Detect: detectMissingCandidate},
	{Name: "naked_single", Difficulty: 1, Category: core.CategoryTrivial, Enabled: true, Detect: detectNakedSingle},
	{Name: "last_remaining_in_box", Difficulty: 3, Category: core.CategoryTrivial, Enabled: true, Detect: lastRemainingDetector(core.UnitBox, "last_remaining_in_box")},
	{Name: "last_remaining_in_row", Difficulty: 4, Category: core.CategoryTrivial, Enabled: true, Detect: lastRemainingDetector(core.UnitRow, "last_remaining_in_row")},
	{Name: "last_remaining_in_column", Difficulty: 5, Category: core.CategoryTrivial, Enabled: true, Detect: lastRemainingDetector(core.UnitColumn, "last_remaining_in_column")},
	{Name: "hidden_single", Difficulty: 7, Category: core.CategoryTrivial, Enabled: true, Detect: detectHiddenSingle},
	{Name: "naked_pairs", Difficulty: 9, Category: core.CategoryBasic, Enabled: true, Detect: nakedSetDetector(2, "naked_pairs")},
	{Name: "pointing_pairs", Difficulty: 12, Category: core.CategoryBasic, Enabled: true, Detect: detectPointingPairs},
	{Name: "box_line_reduction", Difficulty: 14, Category: core.CategoryBasic, Enabled: true, Detect: detectBoxLineReduction},
	{Name: "hidden_pairs", Difficulty: 18, Category: core.CategoryBasic, Enabled: true, Detect: hiddenSetDetector(2, "hidden_pairs")},
	{Name: "naked_triples", Difficulty: 22, Category: core.CategoryBasic, Enabled: true, Detect: nakedSetDetector(3, "naked_triples")},
	{Name: "hidden_triples", Difficulty: 28, Category: core.CategoryBasic, Enabled: true, Detect: hiddenSetDetector(3, "hidden_triples")},
	{Name: "naked_quads", Difficulty: 35, Category: core.CategoryIntermediate, Enabled: true, Detect: nakedSetDetector(4, "naked_quads")},
	{Name: "hidden_quads", Difficulty: 42, Category: core.CategoryIntermediate, Enabled: true, Detect: hiddenSetDetector(4, "hidden_quads")},
	{Name: "x_wing", Difficulty: 46, Category: core.CategoryTough, Enabled: true, Detect: fishDetector(2, "x_wing")},
	{Name: "y_wing", Difficulty: 50, Category: core.CategoryTough, Enabled: true, Detect: detectYWing},
	{Name: "chute_remote_pairs", Difficulty: 52, Category: core.CategoryTough, Enabled: true, Detect: detectChuteRemotePairs},
	{Name: "simple_coloring", Difficulty: 54, Category: core.CategoryTough, Enabled: true, Detect: detectSimpleColoring},
	{Name: "swordfish", Difficulty: 62, Category: core.CategoryTough, Enabled: true, Detect: fishDetector(3, "swordfish")},
}

// SetEnabled turns a technique on/off by name; GetHint skips disabled
// techniques. The change is global to the package. The generator has no
// option that calls it, so scoring during generation always uses every
// enabled technique.
func SetEnabled(name string, enabled bool) {
	for i := range Registry {
		if Registry[i].Name == name {
			Registry[i].Enabled = enabled
			return
		}
	}
}

// GetByTier returns every enabled descriptor in category.
func GetByTier(category core.Category) []Descriptor {
	var out []Descriptor
	for _, d := range Registry {
		if d.Category == category && d.Enabled {
			out = append(out, d)
		}
	}
	return out
}

// GetHint tries each enabled detector in ascending difficulty order and
// returns the first one that finds something. A returned hint is
// guaranteed (by each detector's own bookkeeping) to actually change
// state when applied.
func GetHint(b *Board) *Hint {
	for _, d := range Registry {
		if !d.Enabled {
			continue
		}
		if hint := d.Detect(b); hint != nil {
			hint.Difficulty = d.Difficulty
			return hint
		}
	}
	return nil
}

// TechniqueDifficulty looks up a technique's contractual difficulty.
// Unknown names score 50, per spec §6.
func TechniqueDifficulty(name string) int {
	for _, d := range Registry {
		if d.Name == name {
			return d.Difficulty
		}
	}
	return 50
}

// DifficultyToCategory maps a 0-100 difficulty to its band, per spec
// §4.3's inclusive ranges.
func DifficultyToCategory(n int) core.Category {
	switch {
	case n <= 0:
		return core.CategoryError
	case n <= 8:
		return core.CategoryTrivial
	case n <= 25:
		return core.CategoryBasic
	case n <= 45:
		return core.CategoryIntermediate
	case n <= 68:
		return core.CategoryTough
	case n <= 84:
		return core.CategoryDiabolical
	case n <= 92:
		return core.CategoryExtreme
	case n <= 96:
		return core.CategoryMaster
	default:
		return core.CategoryGrandmaster
	}
}
