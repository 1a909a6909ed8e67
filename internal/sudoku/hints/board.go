// Package hints implements the human-style technique battery: an
// ordered set of detectors that each look for one named deduction, the
// apply-hint state transition, and the trace-driven solver built on top
// of them. Unlike package solver, state here is mutated one discrete,
// human-explainable step at a time — placing a digit here removes it
// from peers' pencil marks but does not itself cascade into further
// naked/hidden-single propagation, since surfacing exactly that next
// cascade step is the hint engine's job.
package hints

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/solver"
	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

// Board is the hint engine's working state: a pencil-mark set per square
// plus which squares are already placed. Optionally carries a ground
// truth Solution (from package solver) so the incorrect_value detector
// can compare placed digits against it.
type Board struct {
	Candidates solver.Values
	Placed     []bool
	Solution   solver.Values
}

// NewBoard derives the initial pencil marks from 81 row-major clue
// digits (0 = blank): every empty square starts as {1..9}, then each
// clue's digit is removed from its peers' sets — a single, non-
// cascading pass, matching spec §4.1's Candidates(values) derivation.
func NewBoard(digits []int) (*Board, error) {
	if len(digits) != constants.TotalCells {
		return nil, fmt.Errorf("%w: got %d cells, want %d", core.ErrMalformedInput, len(digits), constants.TotalCells)
	}

	cand := make(solver.Values, constants.TotalCells)
	placed := make([]bool, constants.TotalCells)

	for sq, d := range digits {
		if d < 0 || d > constants.GridSize {
			return nil, fmt.Errorf("%w: square %d has out-of-range digit %d", core.ErrMalformedInput, sq, d)
		}
		if d == 0 {
			cand[sq] = core.FullCandidates()
		} else {
			cand[sq] = core.CandidatesFrom(d)
			placed[sq] = true
		}
	}

	if conflicts := solver.GetConflicts(digits); len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: duplicate clue for digit %d in a shared unit", core.ErrMalformedInput, conflicts[0].Digit)
	}

	for sq, d := range digits {
		if d == 0 {
			continue
		}
		for _, peer := range topology.Default.PeersOf(sq) {
			if !placed[peer] {
				cand[peer] = cand[peer].Clear(d)
			}
		}
	}

	return &Board{Candidates: cand, Placed: placed}, nil
}

// WithSolution attaches a ground-truth solved grid, enabling the
// incorrect_value detector.
func (b *Board) WithSolution(solution solver.Values) *Board {
	b.Solution = solution
	return b
}

// Clone returns an independent copy for speculative use (e.g. by the
// generator, which scores many candidate puzzles).
func (b *Board) Clone() *Board {
	out := &Board{
		Candidates: b.Candidates.Clone(),
		Placed:     append([]bool(nil), b.Placed...),
	}
	if b.Solution != nil {
		out.Solution = b.Solution.Clone()
	}
	return out
}

// IsComplete reports whether every square has been placed.
func (b *Board) IsComplete() bool {
	for _, p := range b.Placed {
		if !p {
			return false
		}
	}
	return true
}

// Digits renders the board as row-major digits (0 for still-blank
// squares).
func (b *Board) Digits() []int {
	out := make([]int, len(b.Candidates))
	for sq := range out {
		if b.Placed[sq] {
			d, _ := b.Candidates[sq].Only()
			out[sq] = d
		}
	}
	return out
}

// unplacedInUnit returns the squares of a unit that are not yet placed.
func (b *Board) unplacedInUnit(unit core.Unit) []int {
	var out []int
	for _, sq := range unit.Cells {
		if !b.Placed[sq] {
			out = append(out, sq)
		}
	}
	return out
}

// CellsWithDigitInUnit returns the unplaced member squares of unit whose
// pencil marks still include digit. Every set/fish/coloring detector is
// built on exactly this query.
func (b *Board) CellsWithDigitInUnit(unit core.Unit, digit int) []int {
	var out []int
	for _, sq := range unit.Cells {
		if !b.Placed[sq] && b.Candidates[sq].Has(digit) {
			out = append(out, sq)
		}
	}
	return out
}

// placedDigitsInUnit returns the set of digits already placed in unit.
func (b *Board) placedDigitsInUnit(unit core.Unit) core.Candidates {
	var seen core.Candidates
	for _, sq := range unit.Cells {
		if b.Placed[sq] {
			d, _ := b.Candidates[sq].Only()
			seen = seen.Set(d)
		}
	}
	return seen
}

func unitsOfKind(kind core.UnitKind) []core.Unit {
	var out []core.Unit
	for _, u := range topology.Default.Units {
		if u.Ref.Kind == kind {
			out = append(out, u)
		}
	}
	return out
}
