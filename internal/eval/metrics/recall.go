package metrics

import "sort"

var DefaultKValues = []int{1, 3, 5, 10}

// hitFromBest is 1.0 when the best-ranked expected document sits within the first k positions.
func hitFromBest(best int, found bool, k int) float64 {
	if found && best <= k {
		return 1.0
	}
	return 0
}

// NormalizeKValues merges the default thresholds with extra ones, drops
// non-positive values and returns them sorted without duplicates.
func NormalizeKValues(extra ...int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, k := range append(append([]int{}, DefaultKValues...), extra...) {
		if k <= 0 || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
