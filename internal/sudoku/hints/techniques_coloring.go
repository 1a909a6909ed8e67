package hints

import (
	"fmt"

	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

// detectSimpleColoring finds, for one digit, the conjugate-pair graph
// (units where the digit has exactly two candidate cells) and two-colors
// each connected component. Rule 2: a unit holding two same-colored
// nodes makes that color impossible everywhere. Rule 4: a cell outside
// the chain that sees both colors cannot hold the digit either way.
func detectSimpleColoring(b *Board) *Hint {
	for d := 1; d <= constants.GridSize; d++ {
		adjacency := conjugatePairGraph(b, d)
		if len(adjacency) == 0 {
			continue
		}

		visited := map[int]bool{}
		for start := range adjacency {
			if visited[start] {
				continue
			}
			colors := colorComponent(adjacency, start, visited)
			if len(colors) < 2 {
				continue
			}

			if hint := coloringRule2(b, d, colors); hint != nil {
				return hint
			}
			if hint := coloringRule4(b, d, colors); hint != nil {
				return hint
			}
		}
	}
	return nil
}

// conjugatePairGraph returns every square's colorable neighbors for
// digit d: two squares are linked whenever some unit has exactly those
// two squares as digit d's remaining candidates.
func conjugatePairGraph(b *Board, d int) map[int][]int {
	adjacency := map[int][]int{}
	for _, unit := range unitsAll {
		cells := b.CellsWithDigitInUnit(unit, d)
		if len(cells) != 2 {
			continue
		}
		x, y := cells[0], cells[1]
		adjacency[x] = append(adjacency[x], y)
		adjacency[y] = append(adjacency[y], x)
	}
	return adjacency
}

func colorComponent(adjacency map[int][]int, start int, visited map[int]bool) map[int]int {
	colors := map[int]int{start: 0}
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			colors[next] = 1 - colors[cur]
			queue = append(queue, next)
		}
	}
	return colors
}

func chainFromColors(colors map[int]int) []ColorNode {
	var chain []ColorNode
	for sq, c := range colors {
		chain = append(chain, ColorNode{Square: sq, Color: c})
	}
	return chain
}

// coloringRule2 eliminates an entire color when two of its nodes share a
// unit (both can't be true at once, so that color is false everywhere).
func coloringRule2(b *Board, d int, colors map[int]int) *Hint {
	for _, unit := range unitsAll {
		byColor := map[int][]int{}
		for _, sq := range unit.Cells {
			if c, ok := colors[sq]; ok {
				byColor[c] = append(byColor[c], sq)
			}
		}
		for color, cells := range byColor {
			if len(cells) < 2 {
				continue
			}
			var eliminations []Elimination
			for sq, c := range colors {
				if c == color && b.Candidates[sq].Has(d) && !b.Placed[sq] {
					eliminations = append(eliminations, Elimination{Square: sq, Digit: d})
				}
			}
			if len(eliminations) == 0 {
				continue
			}
			return &Hint{
				Technique:    "simple_coloring",
				Action:       ActionEliminate,
				Digits:       []int{d},
				Chain:        chainFromColors(colors),
				Eliminations: eliminations,
				Explanation:  fmt.Sprintf("digit %d: two same-colored cells share %s %d, so that color is false", d, unit.Ref.Kind, unit.Ref.Index),
			}
		}
	}
	return nil
}

// coloringRule4 eliminates the digit from any uncolored candidate cell
// that sees both colors of the chain: whichever color turns out true,
// this cell would be eliminated by it.
func coloringRule4(b *Board, d int, colors map[int]int) *Hint {
	for sq := 0; sq < constants.TotalCells; sq++ {
		if b.Placed[sq] || !b.Candidates[sq].Has(d) {
			continue
		}
		if _, inChain := colors[sq]; inChain {
			continue
		}
		seesColor0, seesColor1 := false, false
		for other, c := range colors {
			if !topology.Default.SharesUnit(sq, other) {
				continue
			}
			if c == 0 {
				seesColor0 = true
			} else {
				seesColor1 = true
			}
		}
		if seesColor0 && seesColor1 {
			return &Hint{
				Technique:   "simple_coloring",
				Action:      ActionEliminate,
				Digits:      []int{d},
				Chain:       chainFromColors(colors),
				Eliminations: []Elimination{{Square: sq, Digit: d}},
				Explanation: fmt.Sprintf("cell %d sees both colors of digit %d's chain", sq, d),
			}
		}
	}
	return nil
}
