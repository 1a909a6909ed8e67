package generate

import (
	"math"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/solver"
)

// moveKind tags the three local moves the annealing search can make.
type moveKind int

const (
	moveAdd moveKind = iota
	moveRemove
	moveSwap
)

const (
	initialTemperature = 10.0
	coolingRateMin     = 0.99
	coolingRateMax     = 0.999
	maxStaleRounds     = 25
)

// GenerateWithDifficulty starts from a near-minimal puzzle (or
// opts.StartPuzzle, if given) and performs simulated annealing over
// add/remove/swap moves until the scored difficulty lands within
// opts.Tolerance of opts.Target, opts.MaxAttempts moves are exhausted,
// or every restart round goes stale. It always returns the best
// candidate found, even if the target was never reached exactly.
func GenerateWithDifficulty(opts Options) (Candidate, error) {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 200
	}

	r := newRNG(seedOrDefault(opts.Seed))
	rounds := 4
	perRound := opts.MaxAttempts / rounds
	if perRound < 1 {
		perRound = opts.MaxAttempts
		rounds = 1
	}

	var best Candidate
	bestCost := math.Inf(1)
	haveBest := false

	for round := 0; round < rounds; round++ {
		full := solver.SampleFullGrid(ptrInt64(seedOrDefault(opts.Seed) + int64(round)))
		current := opts.StartPuzzle
		if current == nil || round > 0 {
			seed := seedOrDefault(opts.Seed) + int64(round)
			puzzle, _ := GenerateWithClues(28, &seed)
			current = puzzle
		}

		cand, ok := evaluate(current)
		if !ok {
			continue
		}
		currentCost := math.Abs(float64(cand.Difficulty) - opts.Target)
		if currentCost < bestCost {
			best, bestCost, haveBest = cand, currentCost, true
		}

		temperature := initialTemperature
		coolingRate := coolingRateMin + r.float64()*(coolingRateMax-coolingRateMin)
		lastMove := -1
		stale := 0

		for step := 0; step < perRound; step++ {
			if currentCost <= opts.Tolerance {
				break
			}
			if stale >= maxStaleRounds {
				break
			}

			kind := chooseMove(r, cand.Difficulty, opts.Target, lastMove)
			candidate, moved := applyMove(r, full, current, kind)
			if !moved {
				stale++
				continue
			}

			nextCand, ok := evaluate(candidate)
			if !ok {
				stale++
				continue
			}
			nextCost := math.Abs(float64(nextCand.Difficulty) - opts.Target)

			accept := nextCost <= currentCost
			if !accept {
				delta := currentCost - nextCost
				accept = r.float64() < math.Exp(delta/temperature)
			}

			if accept {
				current, cand, currentCost = candidate, nextCand, nextCost
				lastMove = int(kind)
				stale = 0
			} else {
				stale++
			}

			if currentCost < bestCost {
				best, bestCost, haveBest = cand, currentCost, true
			}

			temperature *= coolingRate
		}
	}

	if !haveBest {
		return Candidate{}, core.ErrNoLogicalProgress
	}
	return best, nil
}

// chooseMove picks add when the candidate is too hard, remove/swap
// when too easy, avoiding immediately repeating lastMove (the tabu
// rule against undoing the previous step).
func chooseMove(r *rng, currentDifficulty int, target float64, lastMove int) moveKind {
	var kind moveKind
	if float64(currentDifficulty) > target {
		kind = moveAdd
	} else {
		if r.intn(2) == 0 {
			kind = moveRemove
		} else {
			kind = moveSwap
		}
	}
	if int(kind) == lastMove {
		if kind == moveSwap {
			kind = moveRemove
		} else {
			kind = moveSwap
		}
	}
	return kind
}

func applyMove(r *rng, full, current solver.Values, kind moveKind) (solver.Values, bool) {
	switch kind {
	case moveAdd:
		return addClue(r, full, current)
	case moveRemove:
		return removeClue(r, current)
	default:
		return swapClue(r, full, current)
	}
}

func addClue(r *rng, full, current solver.Values) (solver.Values, bool) {
	blanks := blankSquares(current)
	if len(blanks) == 0 {
		return current, false
	}
	pos := blanks[r.intn(len(blanks))]
	next := current.Clone()
	next[pos] = full[pos]
	return next, true
}

func removeClue(r *rng, current solver.Values) (solver.Values, bool) {
	filled := filledSquares(current)
	for _, i := range shuffledIndices(r, len(filled)) {
		pos := filled[i]
		next := current.Clone()
		saved := next[pos]
		next[pos] = core.FullCandidates()
		if unique, err := solver.IsUnique(next); err == nil && unique {
			return next, true
		}
		next[pos] = saved
	}
	return current, false
}

func swapClue(r *rng, full, current solver.Values) (solver.Values, bool) {
	filled := filledSquares(current)
	blanks := blankSquares(current)
	if len(filled) == 0 || len(blanks) == 0 {
		return current, false
	}
	removeFrom := filled[r.intn(len(filled))]
	addAt := blanks[r.intn(len(blanks))]

	next := current.Clone()
	saved := next[removeFrom]
	next[removeFrom] = core.FullCandidates()
	next[addAt] = full[addAt]

	if unique, err := solver.IsUnique(next); err == nil && unique {
		return next, true
	}
	next[removeFrom] = saved
	next[addAt] = core.FullCandidates()
	return current, false
}

func blankSquares(values solver.Values) []int {
	var out []int
	for i, c := range values {
		if c.Count() != 1 {
			out = append(out, i)
		}
	}
	return out
}

func filledSquares(values solver.Values) []int {
	var out []int
	for i, c := range values {
		if c.Count() == 1 {
			out = append(out, i)
		}
	}
	return out
}

func shuffledIndices(r *rng, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.shuffle(idx)
	return idx
}

func ptrInt64(v int64) *int64 { return &v }
