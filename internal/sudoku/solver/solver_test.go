package solver

import (
	"errors"
	"testing"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/sudoku/topology"
)

func digitsFromString(s string) []int {
	digits := make([]int, 0, 81)
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '0':
			digits = append(digits, 0)
		}
	}
	return digits
}

var easyBoard = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func TestAssignEliminationPropagatesToPeers(t *testing.T) {
	vals := Empty()

	if vals.IsSolved() {
		t.Errorf("an empty board should not be solved")
	}

	if !Assign(vals, 20, 5) {
		t.Fatalf("assign should not fail on an empty board")
	}

	if c := vals[20].Count(); c != 1 {
		t.Errorf("got %d candidates at square 20, want 1", c)
	}
	if d, _ := vals[20].Only(); d != 5 {
		t.Errorf("got digit %d at square 20, want 5", d)
	}
	for _, peer := range topology.Default.PeersOf(20) {
		if vals[peer].Has(5) {
			t.Errorf("peer %d of square 20 still has 5 as a candidate", peer)
		}
	}
}

func TestFromDigitsSolvesEasyByPropagationAlone(t *testing.T) {
	values, err := FromDigits(digitsFromString(easyBoard))
	if err != nil {
		t.Fatalf("FromDigits: %v", err)
	}
	if !values.IsSolved() {
		t.Errorf("expected easy board to be solved by propagation alone")
	}
}

func TestFromDigitsRejectsDuplicateClueInPeer(t *testing.T) {
	digits := make([]int, 81)
	digits[0] = 1
	digits[1] = 1 // same row as square 0

	_, err := FromDigits(digits)
	if err == nil {
		t.Fatal("expected a malformed-input error for conflicting clues")
	}
	if !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("got error %v, want ErrMalformedInput", err)
	}
}

func TestFromDigitsRejectsWrongLength(t *testing.T) {
	_, err := FromDigits(make([]int, 10))
	if !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("got error %v, want ErrMalformedInput", err)
	}
}

var hardBoard = "4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......"

func TestSolveFindsSolutionBySearch(t *testing.T) {
	values, err := FromDigits(digitsFromString(hardBoard))
	if err != nil {
		t.Fatalf("FromDigits: %v", err)
	}

	result, ok := Solve(values, Options{})
	if !ok || !result.IsSolved() {
		t.Errorf("expected hard board to be solved by search")
	}
}

func TestSolveEmptyBoardSucceeds(t *testing.T) {
	result, ok := Solve(Empty(), Options{})
	if !ok || !result.IsSolved() {
		t.Errorf("expected Solve on an empty board to produce some valid grid")
	}
}

func TestIsUniqueOnKnownPuzzles(t *testing.T) {
	values, err := FromDigits(digitsFromString(easyBoard))
	if err != nil {
		t.Fatalf("FromDigits: %v", err)
	}
	unique, err := IsUnique(values)
	if err != nil {
		t.Fatalf("IsUnique: %v", err)
	}
	if !unique {
		t.Errorf("expected the easy board to have a unique solution")
	}

	emptyUnique, err := IsUnique(Empty())
	if err != nil {
		t.Fatalf("IsUnique(empty): %v", err)
	}
	if emptyUnique {
		t.Errorf("expected an empty board to not be unique")
	}
}

func TestSampleFullGridIsFullyPlaced(t *testing.T) {
	seed := int64(42)
	grid := SampleFullGrid(&seed)
	if !grid.IsSolved() {
		t.Errorf("SampleFullGrid should always return a complete, valid grid")
	}
}

func TestSampleFullGridDeterministicWithSeed(t *testing.T) {
	seed := int64(7)
	a := SampleFullGrid(&seed)
	b := SampleFullGrid(&seed)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("same seed produced different grids at square %d", i)
			break
		}
	}
}

func TestGetConflictsDetectsDuplicateRow(t *testing.T) {
	digits := make([]int, 81)
	digits[0] = 5
	digits[1] = 5

	conflicts := GetConflicts(digits)
	if len(conflicts) == 0 {
		t.Fatal("expected at least one conflict")
	}
	if conflicts[0].Digit != 5 {
		t.Errorf("got conflicting digit %d, want 5", conflicts[0].Digit)
	}
}

func TestGetConflictsEmptyOnValidBoard(t *testing.T) {
	digits := digitsFromString(easyBoard)
	if conflicts := GetConflicts(digits); len(conflicts) != 0 {
		t.Errorf("got %d conflicts on a valid board, want 0", len(conflicts))
	}
}
