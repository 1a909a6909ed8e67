package hints

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

func boxIndexOf(square int) int {
	row, col := topology.RowCol(square)
	return (row/constants.BoxSize)*constants.BoxSize + col/constants.BoxSize
}

// detectPointingPairs: within one box, a digit's candidates are confined
// to a single row or column; eliminate it from that line outside the
// box.
func detectPointingPairs(b *Board) *Hint {
	boxes := unitsOfKind(core.UnitBox)
	rows := unitsOfKind(core.UnitRow)
	cols := unitsOfKind(core.UnitColumn)

	for _, box := range boxes {
		for d := 1; d <= constants.GridSize; d++ {
			cells := b.CellsWithDigitInUnit(box, d)
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}

			sameRow, sameCol := true, true
			row0, col0 := topology.RowCol(cells[0])
			for _, sq := range cells[1:] {
				r, c := topology.RowCol(sq)
				if r != row0 {
					sameRow = false
				}
				if c != col0 {
					sameCol = false
				}
			}

			var line core.Unit
			switch {
			case sameRow:
				line = rows[row0]
			case sameCol:
				line = cols[col0]
			default:
				continue
			}

			var eliminations []Elimination
			for _, sq := range b.CellsWithDigitInUnit(line, d) {
				if !containsInt(cells, sq) {
					eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
				}
			}
			if len(eliminations) == 0 {
				continue
			}

			boxRef, lineRef := box.Ref, line.Ref
			return &Hint{
				Technique:    "pointing_pairs",
				Action:       ActionEliminate,
				Squares:      cells,
				Digits:       []int{d},
				Unit:         &boxRef,
				Unit2:        &lineRef,
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("digit %d in box %d is confined to %s %d", d, boxRef.Index, lineRef.Kind, lineRef.Index),
			}
		}
	}
	return nil
}

// detectBoxLineReduction: within one line, a digit's candidates are
// confined to one box; eliminate it from the box outside the line.
func detectBoxLineReduction(b *Board) *Hint {
	boxes := unitsOfKind(core.UnitBox)
	lines := append(append([]core.Unit{}, unitsOfKind(core.UnitRow)...), unitsOfKind(core.UnitColumn)...)

	for _, line := range lines {
		for d := 1; d <= constants.GridSize; d++ {
			cells := b.CellsWithDigitInUnit(line, d)
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}

			box0 := boxIndexOf(cells[0])
			sameBox := true
			for _, sq := range cells[1:] {
				if boxIndexOf(sq) != box0 {
					sameBox = false
					break
				}
			}
			if !sameBox {
				continue
			}
			box := boxes[box0]

			var eliminations []Elimination
			for _, sq := range b.CellsWithDigitInUnit(box, d) {
				if !containsInt(cells, sq) {
					eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
				}
			}
			if len(eliminations) == 0 {
				continue
			}

			lineRef, boxRef := line.Ref, box.Ref
			return &Hint{
				Technique:    "box_line_reduction",
				Action:       ActionEliminate,
				Squares:      cells,
				Digits:       []int{d},
				Unit:         &lineRef,
				Unit2:        &boxRef,
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("digit %d in %s %d is confined to box %d", d, lineRef.Kind, lineRef.Index, boxRef.Index),
			}
		}
	}
	return nil
}
