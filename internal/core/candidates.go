package core

import "sudoku-engine/pkg/constants"

// Candidates is a bitmask of possible digits 1-9 for one square. Bit i
// (i in 1..9) means digit i is still a candidate; bit 0 is unused.
type Candidates uint16

// FullCandidates returns a mask with every digit 1..9 set.
func FullCandidates() Candidates {
	var c Candidates
	for d := 1; d <= constants.GridSize; d++ {
		c = c.Set(d)
	}
	return c
}

// CandidatesFrom builds a mask from an explicit digit list.
func CandidatesFrom(digits ...int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > constants.GridSize {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c | (1 << uint(digit))
}

func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c &^ (1 << uint(digit))
}

func (c Candidates) Count() int {
	count := 0
	for d := 1; d <= constants.GridSize; d++ {
		if c.Has(d) {
			count++
		}
	}
	return count
}

// Only returns the single candidate digit, if exactly one is set.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= constants.GridSize; d++ {
		if c.Has(d) {
			return d, true
		}
	}
	return 0, false
}

func (c Candidates) ToSlice() []int {
	var out []int
	for d := 1; d <= constants.GridSize; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c Candidates) IsEmpty() bool {
	return c == 0
}

func (c Candidates) Intersect(other Candidates) Candidates { return c & other }
func (c Candidates) Union(other Candidates) Candidates     { return c | other }
func (c Candidates) Subtract(other Candidates) Candidates  { return c &^ other }
func (c Candidates) Equals(other Candidates) bool          { return c == other }

func (c Candidates) String() string {
	if c == 0 {
		return "{}"
	}
	s := "{"
	for i, d := range c.ToSlice() {
		if i > 0 {
			s += ","
		}
		s += string(rune('0' + d))
	}
	return s + "}"
}
