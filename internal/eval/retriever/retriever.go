package retriever

import "context"

// Retriever returns at most topK hits ordered by descending relevance.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]Hit, error)
	Name() string
	Close() error
}

// HealthChecker is implemented by retrievers backed by a remote service.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// Healthy asks r for its health when it can tell, and assumes an in-process
// retriever is always healthy.
func Healthy(ctx context.Context, r Retriever) bool {
	if hc, ok := r.(HealthChecker); ok {
		return hc.Healthy(ctx)
	}
	return true
}

type Hit struct {
	DocumentID int
	Score      float64
}

// IDs projects hits to their document identifiers, preserving order.
func IDs(hits []Hit) []int {
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.DocumentID
	}
	return ids
}

// Scores projects hits to their relevance scores, preserving order.
func Scores(hits []Hit) []float64 {
	scores := make([]float64, len(hits))
	for i, h := range hits {
		scores[i] = h.Score
	}
	return scores
}
