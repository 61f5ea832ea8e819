package core

import "sort"

// ClearLines removes every full row among candidates and drops the rows
// above so that no gaps remain. It returns the cleared rows, bottom-most
// first, or nil if none were full.
//
// The cleared rows are processed in descending order. The span of rows
// between cleared row i and cleared row i+1 moves down by i+1, so each
// surviving row drops by the number of cleared rows beneath it. The top k
// rows end up empty.
func ClearLines(g *Grid, candidates []int) []int {
	full := make([]int, 0, len(candidates))
	for _, r := range candidates {
		if !g.RowIsFull(r) || containsInt(full, r) {
			continue
		}
		full = append(full, r)
	}
	if len(full) == 0 {
		return nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(full)))

	for i, r := range full {
		upper := -1
		if i+1 < len(full) {
			upper = full[i+1]
		}
		shift := i + 1
		// Copy bottom-up so every source is read before it is overwritten.
		for src := r - 1; src > upper; src-- {
			g.copyRow(src, src+shift)
		}
	}

	for r := 0; r < len(full); r++ {
		g.ClearRow(r)
	}

	return full
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
