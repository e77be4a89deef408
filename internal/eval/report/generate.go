package report

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/aggregate"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/runner"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
	"github.com/DjordjeVuckovic/recipe-hunter/pkg/utils"
)

const (
	// MaxListedResults caps retrieved ids and scores per detailed result.
	MaxListedResults = 10
	decimals         = 4
	recallPrefix     = "recall_at_"
)

var ErrNoSummary = errors.New("run has no aggregated summary")

func Generate(run *runner.RunResult) (*Report, error) {
	if run == nil || run.Summary == nil {
		return nil, ErrNoSummary
	}

	r := &Report{
		Metadata: Metadata{
			RunID:            run.RunID.String(),
			Timestamp:        run.StartedAt.UTC(),
			EvaluationMethod: EvaluationMethod,
			Retriever:        run.Retriever,
			QuerySet:         run.Source,
			TopK:             run.TopK,
			KValues:          run.KValues,
			TotalQueries:     len(run.Results),
			SkippedQueries:   len(run.Skipped),
			FailedQueries:    run.FailedCount(),
			DurationMs:       ms(run.Duration),
			Latency:          latencySummary(run.Latency),
		},
		Overall:  groupMetrics(run.Summary.Overall, run.KValues),
		Detailed: make([]QueryDetail, 0, len(run.Results)),
	}

	r.ByQueryType, r.queryTypeOrder = r.grouped(run.Summary.ByCategory, run.KValues)
	r.ByComplexity, r.complexityOrder = r.grouped(run.Summary.ByDifficulty, run.KValues)

	for i := range run.Results {
		r.Detailed = append(r.Detailed, detail(&run.Results[i], run.KValues))
	}

	return r, nil
}

func latencySummary(s runner.LatencyStats) *LatencySummary {
	if s.IsZero() {
		return nil
	}
	return &LatencySummary{
		MeanMs:  ms(s.Mean),
		P50Ms:   ms(s.P50()),
		P95Ms:   ms(s.P95()),
		P99Ms:   ms(s.P99()),
		MaxMs:   ms(s.Max),
		Samples: s.SampleCount,
	}
}

func (r *Report) grouped(g *aggregate.Grouped, kValues []int) (map[string]GroupMetrics, []string) {
	out := make(map[string]GroupMetrics, len(g.Metrics))
	order := make([]string, 0, len(g.Labels))
	for _, label := range g.Labels {
		if err, failed := g.Errors[label]; failed {
			r.GroupErrors = append(r.GroupErrors, GroupError{
				Dimension: g.Dimension,
				Group:     label,
				Count:     g.Counts[label],
				Error:     err.Error(),
			})
			continue
		}
		out[label] = groupMetrics(g.Metrics[label], kValues)
		order = append(order, label)
	}
	return out, order
}

func groupMetrics(m aggregate.Metrics, kValues []int) GroupMetrics {
	gm := GroupMetrics{
		Count:              m.Count,
		Evaluated:          m.Evaluated,
		QueriesFound:       m.FoundCount,
		QueriesNotFound:    m.NotFoundCount,
		FailedQueries:      m.FailedCount,
		Recall:             recallMap(m.Recall, kValues),
		MeanReciprocalRank: round(m.MRR),
		SuccessRate:        round(m.SuccessRate),
	}
	if m.Rank.Available {
		mean, median := round(m.Rank.Mean), round(m.Rank.Median)
		gm.AverageRankWhenFound = &mean
		gm.MedianRankWhenFound = &median
	}
	return gm
}

func detail(res *scorer.Result, kValues []int) QueryDetail {
	d := QueryDetail{
		Query:           res.Query.Text,
		QueryType:       res.Query.Category,
		ComplexityLevel: res.Query.Difficulty,
		ExpectedIDs:     nonNil(res.Query.ExpectedIDs),
		RetrievedIDs:    nonNil(truncate(res.RetrievedIDs)),
		FoundRanks:      res.FoundRanks,
		Recall:          recallMap(res.Recall, kValues),
		ReciprocalRank:  round(res.ReciprocalRank),
		Scores:          make([]float64, 0, min(len(res.Scores), MaxListedResults)),
		FoundAny:        res.FoundAny(),
		Status:          string(res.Outcome),
		LatencyMs:       ms(res.Latency),
	}
	if d.FoundRanks == nil {
		d.FoundRanks = map[int]int{}
	}
	for _, s := range truncate(res.Scores) {
		d.Scores = append(d.Scores, round(s))
	}
	if best, ok := res.Rank(); ok {
		d.TargetRank = &best
	}
	if res.Error != nil {
		d.Error = res.Error.Error()
	}
	return d
}

func recallMap(recall map[int]float64, kValues []int) map[string]float64 {
	out := make(map[string]float64, len(kValues))
	for _, k := range kValues {
		out[RecallKey(k)] = round(recall[k])
	}
	return out
}

func RecallKey(k int) string {
	return recallPrefix + strconv.Itoa(k)
}

// Labels returns group labels for a dimension in first-seen order.
func (r *Report) Labels(dimension string) []string {
	var (
		order []string
		group map[string]GroupMetrics
	)
	switch dimension {
	case aggregate.DimensionCategory:
		order, group = r.queryTypeOrder, r.ByQueryType
	case aggregate.DimensionDifficulty:
		order, group = r.complexityOrder, r.ByComplexity
	default:
		return nil
	}
	if len(order) == len(group) {
		return order
	}

	// decoded reports carry no ordering
	labels := make([]string, 0, len(group))
	for l := range group {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func truncate[T any](s []T) []T {
	if len(s) > MaxListedResults {
		return s[:MaxListedResults]
	}
	return s
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

func round(v float64) float64 {
	return utils.RoundDecimal(v, decimals)
}

func ms(d time.Duration) float64 {
	return round(float64(d) / float64(time.Millisecond))
}
