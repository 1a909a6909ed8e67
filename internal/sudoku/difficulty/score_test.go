package difficulty

import (
	"testing"

	"sudoku-engine/internal/core"
)

func step(technique string, difficulty int) core.Step {
	return core.Step{Technique: technique, Difficulty: difficulty, Hint: core.Hint{Technique: technique, Difficulty: difficulty}}
}

func TestScoreUnsolvedIsGrandmaster(t *testing.T) {
	result := &core.SolveResult{Success: false, Steps: []core.Step{step("naked_single", 1)}}
	score, category, _ := Score(result)
	if score != 100 || category != core.CategoryGrandmaster {
		t.Errorf("got (%d, %s), want (100, grandmaster)", score, category)
	}
}

func TestScoreOnlyTrivialStepsIsOne(t *testing.T) {
	result := &core.SolveResult{
		Success: true,
		Steps: []core.Step{
			step("naked_single", 0),
			step("last_remaining_in_box", 0),
		},
	}
	score, category, _ := Score(result)
	if score != 1 || category != core.CategoryTrivial {
		t.Errorf("got (%d, %s), want (1, trivial)", score, category)
	}
}

func TestScoreFormula(t *testing.T) {
	// M=46 (x_wing), A=mean(9,46)=27.5, K=2 distinct non-trivial techniques.
	// round(0.7*46 + 0.2*27.5 + min(0.5*2,5)) = round(32.2+5.5+1) = round(38.7) = 39
	result := &core.SolveResult{
		Success: true,
		Steps: []core.Step{
			step("naked_pairs", 9),
			step("x_wing", 46),
		},
	}
	score, category, breakdown := Score(result)
	if score != 39 {
		t.Errorf("score = %d, want 39", score)
	}
	if category != core.CategoryIntermediate {
		t.Errorf("category = %s, want intermediate", category)
	}
	if breakdown["naked_pairs"] != 1 || breakdown["x_wing"] != 1 {
		t.Errorf("breakdown = %v, want one of each technique", breakdown)
	}
}

func TestScoreStaysWithinBounds(t *testing.T) {
	result := &core.SolveResult{
		Success: true,
		Steps: []core.Step{
			step("swordfish", 62),
			step("swordfish", 62),
			step("swordfish", 62),
		},
	}
	score, _, _ := Score(result)
	if score < 1 || score > 100 {
		t.Errorf("score %d out of bounds", score)
	}
}
