// Package solver implements the constraint-propagation engine: assign and
// eliminate with recursive naked-single/hidden-single propagation, a
// depth-first search with pluggable square/digit choice policies, a
// uniqueness check, and a randomized full-grid sampler. Everything here
// operates on a working copy of Values owned by exactly one caller, per
// the single-threaded-per-call model.
package solver

import (
	"fmt"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
	"sudoku-engine/pkg/constants"
)

// Values holds, for every square, its current candidate set. A square is
// "placed" once its set has collapsed to a single digit.
type Values []core.Candidates

// Empty returns a board where every square can hold any digit.
func Empty() Values {
	v := make(Values, constants.TotalCells)
	for i := range v {
		v[i] = core.FullCandidates()
	}
	return v
}

// Clone returns an independent copy, used before trying a speculative
// assignment during search.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	copy(out, v)
	return out
}

// IsSolved reports whether every square is a singleton and every unit
// covers all 9 digits.
func (v Values) IsSolved() bool {
	for _, unit := range topology.Default.Units {
		var seen core.Candidates
		for _, sq := range unit.Cells {
			if v[sq].Count() != 1 {
				return false
			}
			d, _ := v[sq].Only()
			seen = seen.Set(d)
		}
		if seen != core.FullCandidates() {
			return false
		}
	}
	return true
}

// Digits renders a fully placed Values as row-major digits. Cells that
// are not singletons render as 0.
func (v Values) Digits() []int {
	out := make([]int, len(v))
	for i, c := range v {
		if d, ok := c.Only(); ok {
			out[i] = d
		}
	}
	return out
}

// Assign reduces values[square] to {digit} by eliminating every other
// candidate, propagating constraints. Returns false on contradiction.
func Assign(values Values, square, digit int) bool {
	for d := 1; d <= constants.GridSize; d++ {
		if d != digit && values[square].Has(d) {
			if !Eliminate(values, square, d) {
				return false
			}
		}
	}
	return true
}

// Eliminate removes digit from values[square], propagating naked-single
// and hidden-single consequences. Returns false on contradiction.
func Eliminate(values Values, square, digit int) bool {
	if !values[square].Has(digit) {
		return true // already eliminated
	}

	values[square] = values[square].Clear(digit)

	switch values[square].Count() {
	case 0:
		return false // invariant I2 violated: no candidates left
	case 1:
		remaining, _ := values[square].Only()
		for _, peer := range topology.Default.PeersOf(square) {
			if !Eliminate(values, peer, remaining) {
				return false
			}
		}
	}

	for _, ui := range topology.Default.UnitsContaining(square) {
		unit := topology.Default.Units[ui]
		var places []int
		for _, sq := range unit.Cells {
			if values[sq].Has(digit) {
				places = append(places, sq)
			}
		}
		switch len(places) {
		case 0:
			return false // invariant I3 violated: no place left for digit
		case 1:
			if !Assign(values, places[0], digit) {
				return false
			}
		}
	}

	return true
}

// FromDigits builds a propagated board from 81 row-major digits (0 =
// blank). A failure here means the clues themselves are contradictory
// (e.g. two peers given the same digit), which spec treats as malformed
// input rather than an internal search contradiction.
func FromDigits(digits []int) (Values, error) {
	if len(digits) != constants.TotalCells {
		return nil, fmt.Errorf("%w: got %d cells, want %d", core.ErrMalformedInput, len(digits), constants.TotalCells)
	}

	values := Empty()
	for sq, d := range digits {
		if d < 0 || d > constants.GridSize {
			return nil, fmt.Errorf("%w: square %d has out-of-range digit %d", core.ErrMalformedInput, sq, d)
		}
		if d != 0 && !Assign(values, sq, d) {
			return nil, fmt.Errorf("%w: clue %d at square %d contradicts another clue", core.ErrMalformedInput, d, sq)
		}
	}
	return values, nil
}

// ChooseSquare selects which unfilled square the search should branch on.
type ChooseSquare string

const (
	ChooseMinDigits ChooseSquare = "min_digits"
	ChooseMaxDigits ChooseSquare = "max_digits"
	ChooseRandom    ChooseSquare = "random"
)

// ChooseDigit selects the order in which a chosen square's remaining
// digits are tried.
type ChooseDigit string

const (
	DigitMin    ChooseDigit = "min"
	DigitMax    ChooseDigit = "max"
	DigitRandom ChooseDigit = "random"
)

// Options configures Solve's search policy. Zero value selects the
// spec's default: MRV square choice, ascending digit order.
type Options struct {
	ChooseSquare ChooseSquare
	ChooseDigit  ChooseDigit
	Seed         *int64
}

func (o Options) squarePolicy() ChooseSquare {
	if o.ChooseSquare == "" {
		return ChooseMinDigits
	}
	return o.ChooseSquare
}

func (o Options) digitPolicy() ChooseDigit {
	if o.ChooseDigit == "" {
		return DigitMin
	}
	return o.ChooseDigit
}

// Solve runs propagation's fixed point then depth-first search with the
// given policy, returning the first complete, consistent board found.
func Solve(values Values, opts Options) (Values, bool) {
	r := newRNG(seedOrDefault(opts.Seed))
	return solve(values, opts, r)
}

func solve(values Values, opts Options, r *rng) (Values, bool) {
	square := chooseSquare(values, opts.squarePolicy(), r)
	if square == -1 {
		return values, true // every square is a singleton: solved
	}

	for _, d := range digitOrder(values[square], opts.digitPolicy(), r) {
		candidate := values.Clone()
		if Assign(candidate, square, d) {
			if result, ok := solve(candidate, opts, r); ok {
				return result, true
			}
		}
	}
	return values, false
}

// chooseSquare returns -1 if every square already has exactly one
// candidate (the board is solved).
func chooseSquare(values Values, policy ChooseSquare, r *rng) int {
	switch policy {
	case ChooseRandom:
		var open []int
		for sq, c := range values {
			if c.Count() > 1 {
				open = append(open, sq)
			}
		}
		if len(open) == 0 {
			return -1
		}
		return open[r.intn(len(open))]
	case ChooseMaxDigits:
		best, bestSize := -1, 0
		for sq, c := range values {
			if n := c.Count(); n > 1 && n > bestSize {
				bestSize, best = n, sq
			}
		}
		return best
	default: // ChooseMinDigits, the MRV default
		best, bestSize := -1, constants.GridSize+1
		for sq, c := range values {
			if n := c.Count(); n > 1 && n < bestSize {
				bestSize, best = n, sq
			}
		}
		return best
	}
}

func digitOrder(c core.Candidates, policy ChooseDigit, r *rng) []int {
	digits := c.ToSlice()
	switch policy {
	case DigitMax:
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	case DigitRandom:
		r.shuffle(digits)
	}
	return digits
}

// IsUnique solves once with choose_digit=min and once with
// choose_digit=max; the puzzle is unique iff both succeed with identical
// placements (spec P4).
func IsUnique(values Values) (bool, error) {
	a, okA := Solve(values.Clone(), Options{ChooseDigit: DigitMin})
	b, okB := Solve(values.Clone(), Options{ChooseDigit: DigitMax})

	if !okA && !okB {
		return false, nil
	}
	if okA != okB {
		return false, fmt.Errorf("%w: divergent solve outcomes", core.ErrUniquenessIndeterminate)
	}

	da, db := a.Digits(), b.Digits()
	for i := range da {
		if da[i] != db[i] {
			return false, nil
		}
	}
	return true, nil
}

// SampleFullGrid produces a randomly permuted complete grid, seeding the
// generator's starting point.
func SampleFullGrid(seed *int64) Values {
	result, _ := Solve(Empty(), Options{ChooseDigit: DigitRandom, ChooseSquare: ChooseMinDigits, Seed: seed})
	return result
}

// GetConflicts reports every unit containing a digit placed in more than
// one member square (invariant I1 violated). digits is a row-major,
// possibly-partial board (0 = blank); duplicate placements are not
// auto-repaired, only reported.
func GetConflicts(digits []int) []core.Conflict {
	var conflicts []core.Conflict
	for _, unit := range topology.Default.Units {
		byDigit := make(map[int][]int)
		for _, sq := range unit.Cells {
			if d := digits[sq]; d != 0 {
				byDigit[d] = append(byDigit[d], sq)
			}
		}
		for digit, cells := range byDigit {
			if len(cells) > 1 {
				conflicts = append(conflicts, core.Conflict{Unit: unit.Ref, Cells: cells, Digit: digit})
			}
		}
	}
	return conflicts
}
