package topology

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestUnitCount(t *testing.T) {
	if len(Default.Units) != 27 {
		t.Errorf("got %d units, want 27", len(Default.Units))
	}
	for sq := 0; sq < 81; sq++ {
		if got := len(Default.UnitsOf[sq]); got != 3 {
			t.Errorf("square %d belongs to %d units, want 3", sq, got)
		}
	}
}

func TestPeersOfSquare20(t *testing.T) {
	// Square 20 is row 2, col 2 (0-based): row 2 {18..26}, col 2 {2,11,20,...},
	// box 0 {0,1,2,9,10,11,18,19,20}.
	got := append([]int(nil), Default.PeersOf(20)...)
	slices.Sort(got)

	want := []int{0, 1, 2, 9, 10, 11, 18, 19, 21, 22, 23, 24, 25, 26, 29, 38, 47, 56, 65, 74}
	if !slices.Equal(got, want) {
		t.Errorf("got peers[20]=%v\nwant %v", got, want)
	}
	if len(got) != 20 {
		t.Errorf("got %d peers, want 20", len(got))
	}
}

func TestSharesUnit(t *testing.T) {
	if !Default.SharesUnit(20, 0) {
		t.Errorf("square 20 and 0 share box 0")
	}
	if Default.SharesUnit(20, 20) {
		t.Errorf("a square should not be its own peer")
	}
	if Default.SharesUnit(0, 80) {
		t.Errorf("squares 0 and 80 share no unit")
	}
}

func TestIndexRowCol(t *testing.T) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			sq := Index(row, col)
			gotRow, gotCol := RowCol(sq)
			if gotRow != row || gotCol != col {
				t.Errorf("RowCol(Index(%d,%d))=(%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}
