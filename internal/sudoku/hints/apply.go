package hints

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
)

// Apply performs the state transition named by hint on b, returning
// whether the state actually changed. A hint whose apply produces no
// change is spec's NoLogicalProgress condition; the trace driver treats
// that as terminal.
func Apply(hint *Hint, b *Board) bool {
	switch hint.Action {
	case ActionAssign:
		return applyAssign(b, hint.PlaceSquare, hint.PlaceDigit)
	case ActionAddCandidate:
		if b.Candidates[hint.PlaceSquare].Has(hint.PlaceDigit) {
			return false
		}
		b.Candidates[hint.PlaceSquare] = b.Candidates[hint.PlaceSquare].Set(hint.PlaceDigit)
		return true
	case ActionEliminate:
		return applyEliminations(b, hint.Eliminations)
	default:
		return false
	}
}

func applyAssign(b *Board, square, digit int) bool {
	if b.Placed[square] {
		// incorrect_value hints target an already-placed cell holding the
		// wrong digit: correcting it to the solution digit is progress.
		// Re-applying an already-correct placement is not.
		current, _ := b.Candidates[square].Only()
		if current == digit {
			return false
		}
	}
	b.Candidates[square] = core.CandidatesFrom(digit)
	b.Placed[square] = true

	for _, peer := range topology.Default.PeersOf(square) {
		if !b.Placed[peer] && b.Candidates[peer].Has(digit) {
			b.Candidates[peer] = b.Candidates[peer].Clear(digit)
		}
	}
	return true
}

func applyEliminations(b *Board, eliminations []Elimination) bool {
	progressed := false
	for _, e := range eliminations {
		if !b.Placed[e.Square] && b.Candidates[e.Square].Has(e.Digit) {
			b.Candidates[e.Square] = b.Candidates[e.Square].Clear(e.Digit)
			progressed = true
		}
	}
	return progressed
}
