package aggregate

import "github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"

type Summary struct {
	Overall      Metrics
	ByCategory   *Grouped
	ByDifficulty *Grouped
}

// Summarize computes overall and grouped metrics. It fails only when the
// overall set cannot be aggregated.
func Summarize(results []scorer.Result, kValues []int) (*Summary, error) {
	overall, err := Overall(results, kValues)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Overall:      overall,
		ByCategory:   ByCategory(results, kValues),
		ByDifficulty: ByDifficulty(results, kValues),
	}, nil
}
