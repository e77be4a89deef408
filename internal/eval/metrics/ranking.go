package metrics

// BestRank returns the lowest rank among found identifiers.
func BestRank(found map[int]int) (int, bool) {
	best, ok := 0, false
	for _, r := range found {
		if !ok || r < best {
			best, ok = r, true
		}
	}
	return best, ok
}
