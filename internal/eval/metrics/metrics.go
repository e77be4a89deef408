package metrics

// ScoreSet holds the rank-derived values for a single query.
type ScoreSet struct {
	FoundRanks     map[int]int
	BestRank       int
	Found          bool
	ReciprocalRank float64
	Recall         map[int]float64
}

// ComputeAll derives every per-query value from one position index, so the
// cost is linear in len(ranked) + len(expected).
func ComputeAll(ranked []int, expected []int, kValues []int) ScoreSet {
	found := NewPositionIndex(ranked).FoundRanks(expected)
	best, ok := BestRank(found)

	s := ScoreSet{
		FoundRanks: found,
		BestRank:   best,
		Found:      ok,
		Recall:     make(map[int]float64, len(kValues)),
	}
	if ok {
		s.ReciprocalRank = 1.0 / float64(best)
	}
	for _, k := range kValues {
		s.Recall[k] = hitFromBest(best, ok, k)
	}
	return s
}
