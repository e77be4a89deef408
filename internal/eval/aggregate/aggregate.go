package aggregate

import (
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
)

const OverallGroup = "overall"

// Metrics is the reduction of a group of per-query results. Means, success
// rate and rank statistics cover the Evaluated results only; failed
// retrievals are tallied in FailedCount.
type Metrics struct {
	Group         string
	Count         int
	Evaluated     int
	FoundCount    int
	NotFoundCount int
	FailedCount   int
	Recall        map[int]float64
	MRR           float64
	SuccessRate   float64
	Rank          RankSummary
}

// Compute reduces results into group metrics. Every query counts equally.
func Compute(group string, results []scorer.Result, kValues []int) (Metrics, error) {
	if len(results) == 0 {
		return Metrics{}, &EmptyGroupError{Group: group}
	}

	m := Metrics{
		Group:  group,
		Count:  len(results),
		Recall: make(map[int]float64, len(kValues)),
	}

	var (
		rrSum float64
		ranks []int
	)
	recallSum := make(map[int]float64, len(kValues))

	for i := range results {
		r := &results[i]
		switch r.Outcome {
		case scorer.OutcomeFailed:
			m.FailedCount++
			continue
		case scorer.OutcomeFound:
			m.FoundCount++
		default:
			m.NotFoundCount++
		}

		m.Evaluated++
		rrSum += r.ReciprocalRank
		for _, k := range kValues {
			recallSum[k] += r.Recall[k]
		}
		if best, ok := r.Rank(); ok {
			ranks = append(ranks, best)
		}
	}

	if m.Evaluated == 0 {
		return Metrics{}, &EmptyGroupError{Group: group, Failed: m.FailedCount}
	}

	n := float64(m.Evaluated)
	for _, k := range kValues {
		m.Recall[k] = recallSum[k] / n
	}
	m.MRR = rrSum / n
	m.SuccessRate = float64(m.FoundCount) / n
	m.Rank = summarizeRanks(ranks)

	return m, nil
}

// Overall aggregates the full result set.
func Overall(results []scorer.Result, kValues []int) (Metrics, error) {
	return Compute(OverallGroup, results, kValues)
}
