package hints

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/solver"
	"sudoku-engine/pkg/constants"
)

// SolveWithHints repeatedly queries GetHint and Apply until the board is
// fully placed, GetHint returns nil, or maxSteps is hit. maxSteps <= 0
// uses the spec default of 1000. A ground-truth solution is derived
// internally (via package solver) so the error-category detectors have
// something to compare against; if the board has no solution at all, the
// trace simply runs dry without ever finding an error hint, which is the
// expected behavior for a puzzle verified unsolvable elsewhere.
func SolveWithHints(digits []int, maxSteps int) (*core.SolveResult, error) {
	if maxSteps <= 0 {
		maxSteps = constants.MaxHintSteps
	}

	board, err := NewBoard(digits)
	if err != nil {
		return nil, err
	}

	if values, err := solver.FromDigits(digits); err == nil {
		if solved, ok := solver.Solve(values, solver.Options{}); ok {
			board = board.WithSolution(solved)
		}
	}

	var steps []core.Step
	for i := 0; i < maxSteps; i++ {
		if board.IsComplete() {
			break
		}
		hint := GetHint(board)
		if hint == nil {
			break
		}
		if !Apply(hint, board) {
			break // ErrNoLogicalProgress: terminal for this trace
		}
		steps = append(steps, core.Step{
			Index:      len(steps),
			Technique:  hint.Technique,
			Difficulty: hint.Difficulty,
			Hint:       *hint,
		})
	}

	return &core.SolveResult{
		Success: board.IsComplete(),
		Steps:   steps,
		Final:   board.Digits(),
	}, nil
}
