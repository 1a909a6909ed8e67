package hints

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

// fishDetector builds a detector for x_wing (k=2) and swordfish (k=3): a
// digit occupying exactly 2..k cells in each of k parallel lines, whose
// positions collectively span only k cross-lines; the digit can be
// eliminated from those cross-lines outside the base lines. Tried once
// with rows as the base and once with columns, covering both
// orientations.
func fishDetector(k int, technique string) Detector {
	return func(b *Board) *Hint {
		if hint := fishInOrientation(b, k, technique, core.UnitRow, core.UnitColumn); hint != nil {
			return hint
		}
		return fishInOrientation(b, k, technique, core.UnitColumn, core.UnitRow)
	}
}

func fishInOrientation(b *Board, k int, technique string, baseKind, crossKind core.UnitKind) *Hint {
	baseUnits := unitsOfKind(baseKind)
	crossUnits := unitsOfKind(crossKind)

	for d := 1; d <= constants.GridSize; d++ {
		var candidateLines []int // indices into baseUnits
		for i, u := range baseUnits {
			n := len(b.CellsWithDigitInUnit(u, d))
			if n >= 2 && n <= k {
				candidateLines = append(candidateLines, i)
			}
		}
		if len(candidateLines) < k {
			continue
		}

		for _, combo := range combinations(len(candidateLines), k) {
			lineIdxs := make([]int, k)
			crossSet := map[int]bool{}
			var allCells []int
			for i, idx := range combo {
				lineIdxs[i] = candidateLines[idx]
				for _, sq := range b.CellsWithDigitInUnit(baseUnits[lineIdxs[i]], d) {
					allCells = append(allCells, sq)
					crossSet[crossIndexOf(sq, crossKind)] = true
				}
			}
			if len(crossSet) != k {
				continue
			}

			var eliminations []Elimination
			for ci := range crossSet {
				for _, sq := range b.CellsWithDigitInUnit(crossUnits[ci], d) {
					if !containsInt(allCells, sq) {
						eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
					}
				}
			}
			if len(eliminations) == 0 {
				continue
			}

			ref := baseUnits[lineIdxs[0]].Ref
			return &Hint{
				Technique:    technique,
				Action:       ActionEliminate,
				Squares:      allCells,
				Digits:       []int{d},
				Unit:         &ref,
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("digit %d forms a %d-line fish across %ss", d, k, baseKind),
			}
		}
	}
	return nil
}

func crossIndexOf(square int, crossKind core.UnitKind) int {
	row, col := topology.RowCol(square)
	if crossKind == core.UnitRow {
		return row
	}
	return col
}
