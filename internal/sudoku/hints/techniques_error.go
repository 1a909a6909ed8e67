package hints

import (
	"fmt"

	"sudoku-engine/pkg/constants"
)

// detectIncorrectValue finds a placed cell whose digit disagrees with
// the unique solution. Requires a ground-truth Solution; without one
// this detector never fires (errors can't be diagnosed without a
// reference solve, exactly as spec §4.3 notes).
func detectIncorrectValue(b *Board) *Hint {
	if b.Solution == nil {
		return nil
	}
	for sq := 0; sq < constants.TotalCells; sq++ {
		if !b.Placed[sq] {
			continue
		}
		actual, _ := b.Candidates[sq].Only()
		correct, _ := b.Solution[sq].Only()
		if actual != correct {
			return &Hint{
				Technique:    "incorrect_value",
				Action:       ActionAssign,
				Squares:      []int{sq},
				Digits:       []int{correct},
				PlaceSquare:  sq,
				PlaceDigit:   correct,
				ActualValue:  actual,
				CorrectValue: correct,
				Explanation:  fmt.Sprintf("square %d holds %d but the solution requires %d", sq, actual, correct),
			}
		}
	}
	return nil
}

// detectMissingCandidate finds an empty cell whose pencil marks, through
// some earlier over-elimination, no longer include the digit it must
// eventually take.
func detectMissingCandidate(b *Board) *Hint {
	if b.Solution == nil {
		return nil
	}
	for sq := 0; sq < constants.TotalCells; sq++ {
		if b.Placed[sq] {
			continue
		}
		correct, _ := b.Solution[sq].Only()
		if !b.Candidates[sq].Has(correct) {
			return &Hint{
				Technique:   "missing_candidate",
				Action:      ActionAddCandidate,
				Squares:     []int{sq},
				Digits:      []int{correct},
				PlaceSquare: sq,
				PlaceDigit:  correct,
				Explanation: fmt.Sprintf("square %d is missing %d from its candidates", sq, correct),
			}
		}
	}
	return nil
}
