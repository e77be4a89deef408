package scorer

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/metrics"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
)

const DefaultTopK = 10

type Config struct {
	TopK    int
	KValues []int
}

// Normalize fills in the default top_k and makes sure the recall thresholds
// include 1, 3, 5, 10 and top_k itself.
func (c Config) Normalize() Config {
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	c.KValues = metrics.NormalizeKValues(append(append([]int{}, c.KValues...), c.TopK)...)
	return c
}

// Score issues q against r exactly once and derives every per-query metric
// from the returned ranking. A retrieval error is captured in the result.
func Score(ctx context.Context, q queryset.Query, r retriever.Retriever, cfg Config) Result {
	cfg = cfg.Normalize()

	start := time.Now()
	hits, err := r.Retrieve(ctx, q.Text, cfg.TopK)
	latency := time.Since(start)

	if err != nil {
		return Result{
			Query:      q,
			Outcome:    OutcomeFailed,
			FoundRanks: map[int]int{},
			Recall:     zeroRecall(cfg.KValues),
			Latency:    latency,
			Error:      err,
		}
	}

	ids := retriever.IDs(hits)
	s := metrics.ComputeAll(ids, q.ExpectedIDs, cfg.KValues)

	outcome := OutcomeNotFound
	if s.Found {
		outcome = OutcomeFound
	}

	return Result{
		Query:          q,
		Outcome:        outcome,
		RetrievedIDs:   ids,
		Scores:         retriever.Scores(hits),
		FoundRanks:     s.FoundRanks,
		BestRank:       s.BestRank,
		Recall:         s.Recall,
		ReciprocalRank: s.ReciprocalRank,
		Latency:        latency,
	}
}

func zeroRecall(kValues []int) map[int]float64 {
	m := make(map[int]float64, len(kValues))
	for _, k := range kValues {
		m[k] = 0
	}
	return m
}
