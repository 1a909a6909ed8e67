// Package topology precomputes the Sudoku grid's fixed structure: the 81
// squares, the 27 units (rows, columns, boxes), the 3 units each square
// belongs to, and each square's 20 peers. Everything here is built once
// and is read-only afterwards, matching spec invariant I4 (the unit
// structure is fixed for the whole process lifetime) and spec §5's
// statement that the topology tables are immutable and safely shareable
// by reference across concurrent callers.
package topology

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/pkg/constants"

	"golang.org/x/exp/slices"
)

// Index returns the linear square index for a 0-based row and column.
func Index(row, col int) int {
	return row*constants.GridSize + col
}

// RowCol inverts Index.
func RowCol(square int) (row, col int) {
	return square / constants.GridSize, square % constants.GridSize
}

// Topology is the immutable set of precomputed adjacency tables.
type Topology struct {
	// Units holds all 27 units, each a sorted list of 9 square indices.
	Units []core.Unit

	// UnitsOf[square] lists the 3 indices into Units that square belongs to.
	UnitsOf [][]int

	// Peers[square] lists the 20 distinct other squares sharing a unit
	// with square.
	Peers [][]int
}

func build() *Topology {
	var units []core.Unit

	for row := 0; row < constants.GridSize; row++ {
		var cells []int
		for col := 0; col < constants.GridSize; col++ {
			cells = append(cells, Index(row, col))
		}
		units = append(units, core.Unit{Ref: core.UnitRef{Kind: core.UnitRow, Index: row}, Cells: cells})
	}

	for col := 0; col < constants.GridSize; col++ {
		var cells []int
		for row := 0; row < constants.GridSize; row++ {
			cells = append(cells, Index(row, col))
		}
		units = append(units, core.Unit{Ref: core.UnitRef{Kind: core.UnitColumn, Index: col}, Cells: cells})
	}

	boxIdx := 0
	for boxRow := 0; boxRow < constants.BoxSize; boxRow++ {
		for boxCol := 0; boxCol < constants.BoxSize; boxCol++ {
			var cells []int
			for r := 0; r < constants.BoxSize; r++ {
				for c := 0; c < constants.BoxSize; c++ {
					cells = append(cells, Index(boxRow*constants.BoxSize+r, boxCol*constants.BoxSize+c))
				}
			}
			units = append(units, core.Unit{Ref: core.UnitRef{Kind: core.UnitBox, Index: boxIdx}, Cells: cells})
			boxIdx++
		}
	}

	unitsOf := make([][]int, constants.TotalCells)
	for sq := 0; sq < constants.TotalCells; sq++ {
		for ui, u := range units {
			if slices.Contains(u.Cells, sq) {
				unitsOf[sq] = append(unitsOf[sq], ui)
			}
		}
	}

	peers := make([][]int, constants.TotalCells)
	for sq := 0; sq < constants.TotalCells; sq++ {
		for _, ui := range unitsOf[sq] {
			for _, other := range units[ui].Cells {
				if other != sq && slices.Index(peers[sq], other) < 0 {
					peers[sq] = append(peers[sq], other)
				}
			}
		}
	}

	return &Topology{Units: units, UnitsOf: unitsOf, Peers: peers}
}

// Default is the single shared topology instance. There is exactly one
// board shape, so one table serves every caller.
var Default = build()

// UnitsContaining returns the 3 units (by index into Default.Units) that
// square belongs to.
func (t *Topology) UnitsContaining(square int) []int {
	return t.UnitsOf[square]
}

// PeersOf returns the 20 peers of square.
func (t *Topology) PeersOf(square int) []int {
	return t.Peers[square]
}

// SharesUnit reports whether a and b belong to a common unit (and are
// distinct).
func (t *Topology) SharesUnit(a, b int) bool {
	if a == b {
		return false
	}
	return slices.Contains(t.Peers[a], b)
}
