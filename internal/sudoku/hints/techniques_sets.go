package hints

import (
	"fmt"
	"sort"

	"sudoku-engine/internal/core"
)

// nakedSetDetector builds a detector for naked pairs/triples/quads: k
// cells within one unit whose combined candidate set has size k: those k
// digits can be eliminated from the unit's other cells.
func nakedSetDetector(k int, technique string) Detector {
	return func(b *Board) *Hint {
		for _, unit := range unitsAll {
			var members []int
			for _, sq := range b.unplacedInUnit(unit) {
				if n := b.Candidates[sq].Count(); n >= 2 && n <= k {
					members = append(members, sq)
				}
			}
			if len(members) < k {
				continue
			}

			for _, combo := range combinations(len(members), k) {
				cells := make([]int, k)
				var union core.Candidates
				for i, idx := range combo {
					cells[i] = members[idx]
					union = union.Union(b.Candidates[cells[i]])
				}
				if union.Count() != k {
					continue
				}

				var eliminations []Elimination
				for _, sq := range b.unplacedInUnit(unit) {
					if containsInt(cells, sq) {
						continue
					}
					for _, d := range union.ToSlice() {
						if b.Candidates[sq].Has(d) {
							eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
						}
					}
				}
				if len(eliminations) == 0 {
					continue
				}

				ref := unit.Ref
				return &Hint{
					Technique:    technique,
					Action:       ActionEliminate,
					Squares:      cells,
					Digits:       union.ToSlice(),
					Unit:         &ref,
					Eliminations: eliminations,
					Explanation:  fmt.Sprintf("cells %v form a naked set of size %d in %s %d", cells, k, ref.Kind, ref.Index),
				}
			}
		}
		return nil
	}
}

// hiddenSetDetector builds a detector for hidden pairs/triples/quads: k
// digits within one unit that collectively appear in exactly k cells:
// every other candidate can be eliminated from those k cells.
func hiddenSetDetector(k int, technique string) Detector {
	return func(b *Board) *Hint {
		for _, unit := range unitsAll {
			for _, combo := range combinations(9, k) {
				digits := make([]int, k)
				for i, d := range combo {
					digits[i] = d + 1
				}

				var positions []int
				for _, sq := range b.unplacedInUnit(unit) {
					for _, d := range digits {
						if b.Candidates[sq].Has(d) {
							positions = append(positions, sq)
							break
						}
					}
				}
				if len(positions) != k {
					continue
				}

				// Every one of the k digits must still be a candidate
				// somewhere in those cells; otherwise they are not a set.
				digitSet := core.CandidatesFrom(digits...)
				var present core.Candidates
				for _, sq := range positions {
					present = present.Union(b.Candidates[sq].Intersect(digitSet))
				}
				if present != digitSet {
					continue
				}

				var eliminations []Elimination
				for _, sq := range positions {
					for _, d := range b.Candidates[sq].Subtract(digitSet).ToSlice() {
						eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
					}
				}
				if len(eliminations) == 0 {
					continue
				}

				sort.Ints(positions)
				ref := unit.Ref
				return &Hint{
					Technique:    technique,
					Action:       ActionEliminate,
					Squares:      positions,
					Digits:       digits,
					Unit:         &ref,
					Eliminations: eliminations,
					Explanation:  fmt.Sprintf("digits %v are confined to cells %v in %s %d", digits, positions, ref.Kind, ref.Index),
				}
			}
		}
		return nil
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
