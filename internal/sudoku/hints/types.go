package hints

import "sudoku-engine/internal/core"

// Aliases so detector files read as plain "Hint", "Elimination" etc.
// without repeating the core. prefix on every line — the same types are
// also what callers outside this package see on a returned *Hint.
type (
	Hint        = core.Hint
	Elimination = core.Elimination
	ColorNode   = core.ColorNode
	UnitRef     = core.UnitRef
)

const (
	ActionAssign       = core.ActionAssign
	ActionEliminate    = core.ActionEliminate
	ActionAddCandidate = core.ActionAddCandidate
)
