package aggregate

import "sort"

// RankSummary describes best ranks over found queries. Available is false
// when no query in the group found anything; Mean and Median are then meaningless.
type RankSummary struct {
	Available bool
	Count     int
	Mean      float64
	Median    float64
}

func summarizeRanks(ranks []int) RankSummary {
	if len(ranks) == 0 {
		return RankSummary{}
	}

	sorted := make([]int, len(ranks))
	copy(sorted, ranks)
	sort.Ints(sorted)

	var sum int
	for _, r := range sorted {
		sum += r
	}

	return RankSummary{
		Available: true,
		Count:     len(sorted),
		Mean:      float64(sum) / float64(len(sorted)),
		Median:    median(sorted),
	}
}

func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
