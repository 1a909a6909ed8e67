package core

import "errors"

// Sentinel errors for the engine's small error taxonomy. Callers use
// errors.Is against these rather than matching on string content.
var (
	// ErrContradiction marks a propagation or search branch that found no
	// valid assignment. Internal control flow: never surfaced on its own,
	// only as the reason a higher-level operation reports failure.
	ErrContradiction = errors.New("sudoku: contradiction")

	// ErrMalformedInput marks a grid or values map that cannot be parsed:
	// wrong length, unsupported symbols, or a duplicate clue within a peer
	// group.
	ErrMalformedInput = errors.New("sudoku: malformed input")

	// ErrOverbudget marks a step or attempt cap exhausted before
	// completion. Non-fatal: callers get back whatever partial result was
	// produced.
	ErrOverbudget = errors.New("sudoku: step or attempt budget exhausted")

	// ErrNoLogicalProgress marks a hint that get_hint returned but whose
	// apply produced no state change. Terminal for a trace.
	ErrNoLogicalProgress = errors.New("sudoku: hint produced no progress")

	// ErrUniquenessIndeterminate marks an is_unique call on input the
	// solver could not decide because the input itself was malformed.
	ErrUniquenessIndeterminate = errors.New("sudoku: uniqueness indeterminate")
)
