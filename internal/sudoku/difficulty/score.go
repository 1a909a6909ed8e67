// Package difficulty turns a recorded hint trace into the 0-100 score
// and named category spec §4.3/§4.4 define, building on the technique
// difficulty table package hints already maintains.
package difficulty

import (
	"math"
	"sort"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/hints"
)

// Score computes the difficulty and category of a solved trace. An
// incomplete trace (the board never reached IsComplete) always scores
// 100/grandmaster, regardless of which steps were recorded.
func Score(result *core.SolveResult) (int, core.Category, core.Breakdown) {
	breakdown := core.Breakdown{}
	for _, step := range result.Steps {
		breakdown[step.Technique]++
	}

	if !result.Success {
		return 100, core.CategoryGrandmaster, breakdown
	}

	var (
		max      int
		sum      int
		nonZero  int
		distinct = map[string]bool{}
	)
	onlyTrivialZero := true
	for _, step := range result.Steps {
		if step.Difficulty > 0 {
			onlyTrivialZero = false
			sum += step.Difficulty
			nonZero++
			if step.Difficulty > max {
				max = step.Difficulty
			}
			// K counts distinct *non-trivial* techniques: trivial-band
			// steps (naked/hidden singles) contribute to M and A but not K.
			if hints.DifficultyToCategory(step.Difficulty) != core.CategoryTrivial {
				distinct[step.Technique] = true
			}
		}
	}

	if onlyTrivialZero || len(result.Steps) == 0 {
		return 1, core.CategoryTrivial, breakdown
	}

	m := float64(max)
	a := float64(sum) / float64(nonZero)
	k := float64(len(distinct))

	raw := 0.7*m + 0.2*a + math.Min(0.5*k, 5)
	score := int(math.Round(raw))
	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	return score, hints.DifficultyToCategory(score), breakdown
}

// EvaluatePuzzleDifficulty runs the full hint trace for a puzzle's
// givens and reports its difficulty, category, and technique usage.
func EvaluatePuzzleDifficulty(digits []int) (*core.DifficultyReport, error) {
	result, err := hints.SolveWithHints(digits, 0)
	if err != nil {
		return nil, err
	}

	score, category, breakdown := Score(result)

	used := make([]string, 0, len(breakdown))
	for name := range breakdown {
		used = append(used, name)
	}
	// Map iteration order is random; sort by difficulty then name so
	// repeated calls on the same puzzle return an identical ordering.
	sort.Slice(used, func(i, j int) bool {
		di, dj := hints.TechniqueDifficulty(used[i]), hints.TechniqueDifficulty(used[j])
		if di != dj {
			return di < dj
		}
		return used[i] < used[j]
	})

	hardest := ""
	if len(used) > 0 {
		hardest = used[len(used)-1]
	}

	return &core.DifficultyReport{
		Difficulty:     score,
		Category:       category,
		Solvable:       result.Success,
		TechniquesUsed: used,
		Hardest:        hardest,
		Breakdown:      breakdown,
		TotalSteps:     len(result.Steps),
	}, nil
}

// TechniqueDifficulty re-exports the registry lookup so callers that
// only need a technique's contractual weight don't have to import
// package hints directly.
func TechniqueDifficulty(name string) int {
	return hints.TechniqueDifficulty(name)
}

// CategoryForScore re-exports the band mapping for the same reason.
func CategoryForScore(score int) core.Category {
	return hints.DifficultyToCategory(score)
}
