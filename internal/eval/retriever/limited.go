package retriever

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls to an underlying retriever to a fixed rate.
type RateLimited struct {
	Retriever
	limiter *rate.Limiter
}

// WithRateLimit wraps r so it is called at most perSecond times per second.
// A non-positive perSecond returns r unchanged.
func WithRateLimit(r Retriever, perSecond float64) Retriever {
	if perSecond <= 0 {
		return r
	}
	burst := max(int(perSecond), 1)
	return &RateLimited{
		Retriever: r,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (r *RateLimited) Retrieve(ctx context.Context, query string, topK int) ([]Hit, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.Retriever.Retrieve(ctx, query, topK)
}

func (r *RateLimited) Healthy(ctx context.Context) bool {
	return Healthy(ctx, r.Retriever)
}
