package hints

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
)

// chutes lists the six bands of three boxes sharing either a row-band or
// a column-band, addressed by the box indices topology.Default.Units
// assigns in row-major box order (0..2 top row of boxes, 3..5 middle,
// 6..8 bottom; 0,3,6 left column of boxes, 1,4,7 middle, 2,5,8 right).
var chutes = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // horizontal chutes
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // vertical chutes
}

// detectChuteRemotePairs finds two non-peer bi-value cells holding the
// same pair {x,y} in two different boxes of one chute. If the chute's
// third box contains one of {x,y} (placed or candidate) but not the
// other, the absent digit can be eliminated from any cell seeing both
// remote-pair cells.
func detectChuteRemotePairs(b *Board) *Hint {
	boxes := unitsOfKind(core.UnitBox)

	for _, chute := range chutes {
		for _, pairIdx := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
			b1, b2 := chute[pairIdx[0]], chute[pairIdx[1]]
			third := thirdChuteBox(chute, b1, b2)

			cellsB1 := bivalueCellsIn(b, boxes[b1])
			cellsB2 := bivalueCellsIn(b, boxes[b2])

			for _, c1 := range cellsB1 {
				for _, c2 := range cellsB2 {
					if topology.Default.SharesUnit(c1.square, c2.square) {
						continue
					}
					if c1.x != c2.x || c1.y != c2.y {
						continue
					}
					x, y := c1.x, c1.y

					xPresent := digitPresentInUnit(b, boxes[third], x)
					yPresent := digitPresentInUnit(b, boxes[third], y)
					if xPresent == yPresent {
						continue
					}
					absent := y
					if xPresent {
						absent = y
					} else {
						absent = x
					}

					var eliminations []Elimination
					for sq := 0; sq < len(b.Candidates); sq++ {
						if b.Placed[sq] || !b.Candidates[sq].Has(absent) {
							continue
						}
						if sq == c1.square || sq == c2.square {
							continue
						}
						if topology.Default.SharesUnit(sq, c1.square) && topology.Default.SharesUnit(sq, c2.square) {
							eliminations = append(eliminations, Elimination{Square: sq, Digit: absent})
						}
					}
					if len(eliminations) == 0 {
						continue
					}

					return &Hint{
						Technique:    "chute_remote_pairs",
						Action:       ActionEliminate,
						Squares:      []int{c1.square, c2.square},
						Digits:       []int{x, y},
						Eliminations: eliminations,
						Explanation:  fmt.Sprintf("remote pair {%d,%d} at %d and %d eliminates %d", x, y, c1.square, c2.square, absent),
					}
				}
			}
		}
	}
	return nil
}

type bivalueCell struct {
	square int
	x, y   int
}

func bivalueCellsIn(b *Board, box core.Unit) []bivalueCell {
	var out []bivalueCell
	for _, sq := range box.Cells {
		if b.Placed[sq] || b.Candidates[sq].Count() != 2 {
			continue
		}
		pair := b.Candidates[sq].ToSlice()
		out = append(out, bivalueCell{square: sq, x: pair[0], y: pair[1]})
	}
	return out
}

func digitPresentInUnit(b *Board, unit core.Unit, digit int) bool {
	for _, sq := range unit.Cells {
		if b.Placed[sq] {
			if d, _ := b.Candidates[sq].Only(); d == digit {
				return true
			}
			continue
		}
		if b.Candidates[sq].Has(digit) {
			return true
		}
	}
	return false
}

func thirdChuteBox(chute [3]int, b1, b2 int) int {
	for _, b := range chute {
		if b != b1 && b != b2 {
			return b
		}
	}
	return chute[0]
}
