package hints

// combinations returns every k-element subset of {0, ..., n-1}, each as
// an ascending slice of indices, themselves produced in lexicographic
// order. Used by the naked/hidden k-set and fish detectors, all of which
// search over small (k <= 9) combinations of cells, digits, or lines.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
