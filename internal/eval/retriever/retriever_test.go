package retriever

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRetriever struct {
	hits  []Hit
	calls int
}

func (s *staticRetriever) Retrieve(_ context.Context, _ string, topK int) ([]Hit, error) {
	s.calls++
	return s.hits[:min(topK, len(s.hits))], nil
}

func (s *staticRetriever) Name() string { return "static" }
func (s *staticRetriever) Close() error { return nil }

func TestIDsAndScores(t *testing.T) {
	hits := []Hit{{DocumentID: 3, Score: 2.5}, {DocumentID: 1, Score: 1.5}}
	assert.Equal(t, []int{3, 1}, IDs(hits))
	assert.Equal(t, []float64{2.5, 1.5}, Scores(hits))
	assert.Empty(t, IDs(nil))
}

func TestWithRateLimit_Disabled(t *testing.T) {
	s := &staticRetriever{}
	assert.Same(t, s, WithRateLimit(s, 0))
}

func TestWithRateLimit_Delegates(t *testing.T) {
	s := &staticRetriever{hits: []Hit{{DocumentID: 1}, {DocumentID: 2}}}
	r := WithRateLimit(s, 1000)

	hits, err := r.Retrieve(context.Background(), "q", 1)
	require.NoError(t, err)
	assert.Equal(t, []Hit{{DocumentID: 1}}, hits)
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "static", r.Name())
}

func TestWithRateLimit_ContextCancelled(t *testing.T) {
	s := &staticRetriever{hits: []Hit{{DocumentID: 1}}}
	r := WithRateLimit(s, 0.001)

	_, err := r.Retrieve(context.Background(), "q", 1)
	require.NoError(t, err, "first call consumes the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = r.Retrieve(ctx, "q", 1)
	assert.ErrorContains(t, err, "rate limit wait")
	assert.Equal(t, 1, s.calls)
}

type healthStub struct {
	staticRetriever
	healthy bool
}

func (p *healthStub) Healthy(context.Context) bool { return p.healthy }

func TestHealthy(t *testing.T) {
	ctx := context.Background()
	assert.True(t, Healthy(ctx, &staticRetriever{}))
	assert.False(t, Healthy(ctx, &healthStub{healthy: false}))
	assert.True(t, Healthy(ctx, &healthStub{healthy: true}))
	assert.False(t, Healthy(ctx, WithRateLimit(&healthStub{healthy: false}, 10)))
}
