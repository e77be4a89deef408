// Package evaltest provides deterministic retrievers for evaluation tests.
package evaltest

import (
	"context"
	"fmt"
	"sync"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
)

type Call struct {
	Query string
	TopK  int
}

// Retriever answers from a fixed query → ranked ids table. Queries listed in
// Failing return an error; unknown queries return no hits.
type Retriever struct {
	Rankings map[string][]int
	Failing  map[string]bool

	mu    sync.Mutex
	calls []Call
}

var _ retriever.Retriever = (*Retriever)(nil)

func NewRetriever(rankings map[string][]int) *Retriever {
	return &Retriever{Rankings: rankings, Failing: map[string]bool{}}
}

func (r *Retriever) Fail(queries ...string) *Retriever {
	for _, q := range queries {
		r.Failing[q] = true
	}
	return r
}

func (r *Retriever) Retrieve(_ context.Context, query string, topK int) ([]retriever.Hit, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Query: query, TopK: topK})
	r.mu.Unlock()

	if r.Failing[query] {
		return nil, fmt.Errorf("retriever unavailable for %q", query)
	}

	ids := r.Rankings[query]
	n := min(topK, len(ids))
	hits := make([]retriever.Hit, n)
	for i := 0; i < n; i++ {
		hits[i] = retriever.Hit{DocumentID: ids[i], Score: float64(n - i)}
	}
	return hits, nil
}

func (r *Retriever) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

func (r *Retriever) Name() string { return "fixture" }
func (r *Retriever) Close() error { return nil }
