package hints

import (
	"fmt"

	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

type wingPincer struct {
	square int
	third  int
}

func otherDigit(pair []int, known int) int {
	for _, d := range pair {
		if d != known {
			return d
		}
	}
	return 0
}

// detectYWing finds a pivot bi-value cell (candidates A,B) with two
// peers that are themselves bi-value, one sharing A (and a third digit
// C), the other sharing B (and the same third digit C). Whichever cell
// sees both pincers cannot hold C, since one pincer or the other must.
func detectYWing(b *Board) *Hint {
	for pivot := 0; pivot < constants.TotalCells; pivot++ {
		if b.Placed[pivot] || b.Candidates[pivot].Count() != 2 {
			continue
		}
		ab := b.Candidates[pivot].ToSlice()
		a, bd := ab[0], ab[1]

		var pincersForA, pincersForB []wingPincer
		for _, p := range topology.Default.PeersOf(pivot) {
			if b.Placed[p] || b.Candidates[p].Count() != 2 {
				continue
			}
			hasA, hasB := b.Candidates[p].Has(a), b.Candidates[p].Has(bd)
			pc := b.Candidates[p].ToSlice()
			switch {
			case hasA && !hasB:
				pincersForA = append(pincersForA, wingPincer{p, otherDigit(pc, a)})
			case hasB && !hasA:
				pincersForB = append(pincersForB, wingPincer{p, otherDigit(pc, bd)})
			}
		}

		for _, pa := range pincersForA {
			for _, pbw := range pincersForB {
				if pa.square == pbw.square || pa.third != pbw.third || pa.third == 0 {
					continue
				}
				z := pa.third

				var eliminations []Elimination
				for sq := 0; sq < constants.TotalCells; sq++ {
					if sq == pivot || sq == pa.square || sq == pbw.square || b.Placed[sq] {
						continue
					}
					if !b.Candidates[sq].Has(z) {
						continue
					}
					if topology.Default.SharesUnit(sq, pa.square) && topology.Default.SharesUnit(sq, pbw.square) {
						eliminations = append(eliminations, Elimination{Square: sq, Digit: z})
					}
				}
				if len(eliminations) == 0 {
					continue
				}

				return &Hint{
					Technique:    "y_wing",
					Action:       ActionEliminate,
					Squares:      []int{pivot, pa.square, pbw.square},
					Digits:       []int{a, bd, z},
					Eliminations: eliminations,
					Explanation:  fmt.Sprintf("pivot %d (%d/%d) with pincers %d and %d eliminates %d", pivot, a, bd, pa.square, pbw.square, z),
				}
			}
		}
	}
	return nil
}
