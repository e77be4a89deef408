package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/aggregate"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Observer is notified once per scored query, from worker goroutines.
type Observer interface {
	ObserveQuery(retrieverName string, r *scorer.Result)
}

type Runner struct {
	config   Config
	observer Observer
}

type Option func(*Runner)

func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observer = o }
}

func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{config: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scores every query against ret and aggregates the results once all of
// them are done. Per-query retrieval failures never abort the run.
func (r *Runner) Run(ctx context.Context, set *queryset.LoadedSet, ret retriever.Retriever) (*RunResult, error) {
	cfg := r.config.scorerConfig()
	started := time.Now()

	slog.Info("Starting evaluation",
		"retriever", ret.Name(),
		"queries", set.Total(),
		"top_k", cfg.TopK,
		"workers", r.config.workers())

	results, err := r.scoreAll(ctx, set.Queries, ret, cfg)
	if err != nil {
		return nil, err
	}

	summary, err := aggregate.Summarize(results, cfg.KValues)
	if err != nil {
		return nil, fmt.Errorf("aggregate results: %w", err)
	}

	latencies := make([]time.Duration, 0, len(results))
	for i := range results {
		if !results[i].Failed() {
			latencies = append(latencies, results[i].Latency)
		}
	}

	rr := &RunResult{
		RunID:     uuid.New(),
		StartedAt: started,
		Duration:  time.Since(started),
		Retriever: ret.Name(),
		Source:    set.Source,
		TopK:      cfg.TopK,
		KValues:   cfg.KValues,
		Results:   results,
		Skipped:   set.Skipped,
		Summary:   summary,
		Latency:   ComputeLatencyStats(latencies),
	}

	slog.Info("Evaluation finished",
		"retriever", rr.Retriever,
		"queries", len(results),
		"found", summary.Overall.FoundCount,
		"failed", summary.Overall.FailedCount,
		"mrr", summary.Overall.MRR,
		"duration", rr.Duration)

	return rr, nil
}

func (r *Runner) scoreAll(ctx context.Context, queries []queryset.Query, ret retriever.Retriever, cfg scorer.Config) ([]scorer.Result, error) {
	results := make([]scorer.Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.workers())

	for i := range queries {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			res := scorer.Score(gctx, queries[i], ret, cfg)
			if res.Failed() {
				slog.Warn("Retrieval failed", "query", res.Query.Text, "error", res.Error)
			}
			if r.observer != nil {
				r.observer.ObserveQuery(ret.Name(), &res)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation cancelled: %w", err)
	}
	return results, nil
}
