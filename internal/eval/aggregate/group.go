package aggregate

import (
	"log/slog"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
)

const (
	DimensionCategory   = "query_type"
	DimensionDifficulty = "complexity_level"
)

// Grouped holds per-label metrics for one grouping dimension. Labels keeps
// first-seen order. A label whose group could not be aggregated has an
// entry in Errors instead of Metrics; Counts always covers every label.
type Grouped struct {
	Dimension string
	Labels    []string
	Counts    map[string]int
	Metrics   map[string]Metrics
	Errors    map[string]error
}

// GroupBy partitions results by key in one pass and reduces each partition.
func GroupBy(dimension string, results []scorer.Result, key func(*scorer.Result) string, kValues []int) *Grouped {
	partitions := make(map[string][]scorer.Result)
	g := &Grouped{
		Dimension: dimension,
		Counts:    make(map[string]int),
		Metrics:   make(map[string]Metrics),
		Errors:    make(map[string]error),
	}

	for i := range results {
		label := key(&results[i])
		if _, seen := partitions[label]; !seen {
			g.Labels = append(g.Labels, label)
		}
		partitions[label] = append(partitions[label], results[i])
	}

	for _, label := range g.Labels {
		part := partitions[label]
		g.Counts[label] = len(part)

		m, err := Compute(label, part, kValues)
		if err != nil {
			slog.Warn("Group could not be aggregated", "dimension", dimension, "group", label, "error", err)
			g.Errors[label] = err
			continue
		}
		g.Metrics[label] = m
	}

	return g
}

func ByCategory(results []scorer.Result, kValues []int) *Grouped {
	return GroupBy(DimensionCategory, results, func(r *scorer.Result) string {
		return r.Query.Category
	}, kValues)
}

func ByDifficulty(results []scorer.Result, kValues []int) *Grouped {
	return GroupBy(DimensionDifficulty, results, func(r *scorer.Result) string {
		return r.Query.Difficulty
	}, kValues)
}
