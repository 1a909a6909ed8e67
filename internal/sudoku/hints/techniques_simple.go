package hints

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/pkg/constants"
)

// detectNakedSingle finds an unplaced square whose pencil marks have
// shrunk to exactly one digit.
func detectNakedSingle(b *Board) *Hint {
	for sq := 0; sq < constants.TotalCells; sq++ {
		if b.Placed[sq] {
			continue
		}
		if d, ok := b.Candidates[sq].Only(); ok {
			return &Hint{
				Technique:   "naked_single",
				Action:      ActionAssign,
				Squares:     []int{sq},
				Digits:      []int{d},
				PlaceSquare: sq,
				PlaceDigit:  d,
				Explanation: fmt.Sprintf("square %d has only %d left as a candidate", sq, d),
			}
		}
	}
	return nil
}

// detectHiddenSingle finds a unit where some digit's pencil mark appears
// in exactly one unplaced member square, even though that square may
// still carry other candidates too.
func detectHiddenSingle(b *Board) *Hint {
	for _, unit := range topologyUnits() {
		for d := 1; d <= constants.GridSize; d++ {
			cells := b.CellsWithDigitInUnit(unit, d)
			if len(cells) == 1 {
				sq := cells[0]
				if b.Candidates[sq].Count() == 1 {
					continue // that's a naked single, already handled earlier
				}
				ref := unit.Ref
				return &Hint{
					Technique:   "hidden_single",
					Action:      ActionAssign,
					Squares:     []int{sq},
					Digits:      []int{d},
					Unit:        &ref,
					PlaceSquare: sq,
					PlaceDigit:  d,
					Explanation: fmt.Sprintf("digit %d has only one possible square left in %s %d", d, ref.Kind, ref.Index),
				}
			}
		}
	}
	return nil
}

// lastRemainingDetector builds a detector for last_remaining_in_{box,row,column}:
// a unit with exactly one still-unplaced square, whose digit is whatever
// is missing from the unit's placed digits.
func lastRemainingDetector(kind core.UnitKind, technique string) Detector {
	return func(b *Board) *Hint {
		for _, unit := range unitsOfKind(kind) {
			empties := b.unplacedInUnit(unit)
			if len(empties) != 1 {
				continue
			}
			sq := empties[0]
			placedDigits := b.placedDigitsInUnit(unit)
			missing := core.FullCandidates().Subtract(placedDigits)
			d, ok := missing.Only()
			if !ok {
				continue // inconsistent state; let another detector or a conflict check handle it
			}
			ref := unit.Ref
			return &Hint{
				Technique:   technique,
				Action:      ActionAssign,
				Squares:     []int{sq},
				Digits:      []int{d},
				Unit:        &ref,
				PlaceSquare: sq,
				PlaceDigit:  d,
				Explanation: fmt.Sprintf("%s %d has only one empty square left, which must hold %d", ref.Kind, ref.Index, d),
			}
		}
		return nil
	}
}

func topologyUnits() []core.Unit {
	return unitsAll
}
