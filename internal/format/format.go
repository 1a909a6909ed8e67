// Package format adapts between the engine's []int digit grids and the
// two textual wire formats external callers use: an 81-character
// string grid, and a compact run-length encoding for solved boards.
package format

import (
	"fmt"
	"strings"

	"sudoku-engine/pkg/constants"
)

// ParseGridString reads an 81-character string grid: digits '1'-'9'
// are clues, '.' and '0' are empty, every other rune is ignored. Short
// input is padded with empties on the right; long input is truncated
// to the first 81 recognized runes.
func ParseGridString(s string) ([]int, error) {
	digits := make([]int, 0, constants.TotalCells)
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '0':
			digits = append(digits, 0)
		default:
			continue
		}
		if len(digits) == constants.TotalCells {
			break
		}
	}
	for len(digits) < constants.TotalCells {
		digits = append(digits, 0)
	}
	return digits, nil
}

// FormatGridString renders digits back to the canonical 81-character
// form, using '.' for empty squares.
func FormatGridString(digits []int) (string, error) {
	if len(digits) != constants.TotalCells {
		return "", fmt.Errorf("format: expected %d digits, got %d", constants.TotalCells, len(digits))
	}
	var b strings.Builder
	b.Grow(constants.TotalCells)
	for _, d := range digits {
		if d == 0 {
			b.WriteByte('.')
			continue
		}
		if d < 1 || d > constants.GridSize {
			return "", fmt.Errorf("format: digit %d out of range", d)
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String(), nil
}

// runLetters maps an empty-run length 1..6 to its compact symbol.
var runLetters = []byte{'a', 'b', 'c', 'd', 'e', 'f'}

const maxRunLength = 6

// SerializeCompact collapses runs of empty squares into single letters
// (a=1 empty .. f=6 empties) and writes every other square as its
// digit. Only meaningful for boards without long non-empty gaps; a
// partially solved board with scattered blanks still serializes, just
// without much benefit from the run-length step.
func SerializeCompact(digits []int) (string, error) {
	if len(digits) != constants.TotalCells {
		return "", fmt.Errorf("format: expected %d digits, got %d", constants.TotalCells, len(digits))
	}

	var b strings.Builder
	i := 0
	for i < len(digits) {
		if digits[i] != 0 {
			if digits[i] < 1 || digits[i] > constants.GridSize {
				return "", fmt.Errorf("format: digit %d out of range", digits[i])
			}
			b.WriteByte(byte('0' + digits[i]))
			i++
			continue
		}

		run := 0
		for i+run < len(digits) && digits[i+run] == 0 && run < maxRunLength {
			run++
		}
		b.WriteByte(runLetters[run-1])
		i += run
	}
	return b.String(), nil
}

// DeserializeCompact inverts SerializeCompact: a letter 'a'..'f' expands
// to that many empty squares, every other symbol is read as a literal
// digit. Returns an error if the result isn't exactly 81 squares.
func DeserializeCompact(s string) ([]int, error) {
	digits := make([]int, 0, constants.TotalCells)
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r >= 'a' && r <= 'f':
			run := int(r-'a') + 1
			for j := 0; j < run; j++ {
				digits = append(digits, 0)
			}
		default:
			return nil, fmt.Errorf("format: unexpected symbol %q in compact grid", r)
		}
	}
	if len(digits) != constants.TotalCells {
		return nil, fmt.Errorf("format: compact grid decoded to %d squares, want %d", len(digits), constants.TotalCells)
	}
	return digits, nil
}
