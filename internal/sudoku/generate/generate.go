// Package generate builds puzzles by carving clues out of a complete
// grid, either down to a flat clue count (generate_with_clues) or
// toward a target difficulty score via local search (generate_with_difficulty).
package generate

import (
	"math"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/difficulty"
	"sudoku-engine/internal/sudoku/solver"
	"sudoku-engine/pkg/constants"
)

// GenerateWithClues samples a full grid, then removes clues one at a
// time (in a shuffled order), restoring any removal that would break
// uniqueness, until exactly n givens remain or no further square is
// safe to remove.
func GenerateWithClues(n int, seed *int64) (solver.Values, error) {
	full := solver.SampleFullGrid(seed)

	positions := make([]int, constants.TotalCells)
	for i := range positions {
		positions[i] = i
	}
	r := newRNG(seedOrDefault(seed) + 1)
	r.shuffle(positions)

	puzzle := full.Clone()
	removed := 0
	target := constants.TotalCells - n

	for _, pos := range positions {
		if removed >= target {
			break
		}
		saved := puzzle[pos]
		puzzle[pos] = core.FullCandidates()

		if unique, err := solver.IsUnique(puzzle); err == nil && unique {
			removed++
		} else {
			puzzle[pos] = saved
		}
	}

	return puzzle, nil
}

// categoryPreset is a (target, tolerance) midpoint from spec §4.4's
// category table.
type categoryPreset struct {
	target, tolerance float64
}

var categoryPresets = map[core.Category]categoryPreset{
	core.CategoryTrivial:      {4, 4},
	core.CategoryBasic:        {17, 8},
	core.CategoryIntermediate: {35.5, 9.5},
	core.CategoryTough:        {56, 12},
	core.CategoryDiabolical:   {76, 8},
	core.CategoryExtreme:      {88, 4},
	core.CategoryMaster:       {94, 2},
	core.CategoryGrandmaster:  {98, 1},
}

// fastPathCategories get an initial attempt via plain clue-removal
// before falling back to annealing, since low difficulties are cheap
// to hit by chance with a random clue count.
var fastPathCategories = map[core.Category]bool{
	core.CategoryTrivial:      true,
	core.CategoryBasic:        true,
	core.CategoryIntermediate: true,
}

// Options configures a difficulty-targeted search.
type Options struct {
	Target      float64
	Tolerance   float64
	MaxAttempts int
	Seed        *int64
	StartPuzzle solver.Values
}

// Candidate is a scored puzzle produced during a search, returned so
// callers can inspect the attained difficulty even when the exact
// target wasn't reached.
type Candidate struct {
	Puzzle     solver.Values
	Difficulty int
	Category   core.Category
}

// GenerateByCategory maps a named category to its (target, tolerance)
// preset and runs the fast path (for easy categories) or straight to
// annealing (for hard ones).
func GenerateByCategory(cat core.Category, opts Options) (Candidate, error) {
	preset, ok := categoryPresets[cat]
	if !ok {
		preset = categoryPreset{50, 10}
	}
	opts.Target = preset.target
	opts.Tolerance = preset.tolerance
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 40
	}

	if fastPathCategories[cat] {
		if cand, ok := fastPathAttempt(opts); ok {
			return cand, nil
		}
	}

	return GenerateWithDifficulty(opts)
}

// fastPathAttempt tries a handful of random-clue-count puzzles and
// returns the first one scoring within tolerance of the target.
func fastPathAttempt(opts Options) (Candidate, bool) {
	r := newRNG(seedOrDefault(opts.Seed))
	rounds := opts.MaxAttempts / 4
	if rounds < 1 {
		rounds = 1
	}

	low := int(math.Max(17, opts.Target-10))
	high := int(math.Min(60, opts.Target+30))
	if high <= low {
		high = low + 1
	}

	for i := 0; i < rounds; i++ {
		n := low + r.intn(high-low+1)
		seed := seedOrDefault(opts.Seed) + int64(i)
		puzzle, err := GenerateWithClues(n, &seed)
		if err != nil {
			continue
		}
		cand, ok := evaluate(puzzle)
		if !ok {
			continue
		}
		if math.Abs(float64(cand.Difficulty)-opts.Target) <= opts.Tolerance {
			return cand, true
		}
	}
	return Candidate{}, false
}

func evaluate(puzzle solver.Values) (Candidate, bool) {
	report, err := difficulty.EvaluatePuzzleDifficulty(puzzle.Digits())
	if err != nil || !report.Solvable {
		return Candidate{}, false
	}
	return Candidate{Puzzle: puzzle, Difficulty: report.Difficulty, Category: report.Category}, true
}
