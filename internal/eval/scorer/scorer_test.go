package scorer

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/evaltest"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(text string, expected ...int) queryset.Query {
	return queryset.Query{Text: text, ExpectedIDs: expected, Category: "c", Difficulty: "d"}
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{}.Normalize()
	assert.Equal(t, DefaultTopK, cfg.TopK)
	assert.Equal(t, []int{1, 3, 5, 10}, cfg.KValues)

	cfg = Config{TopK: 20, KValues: []int{2}}.Normalize()
	assert.Equal(t, []int{1, 2, 3, 5, 10, 20}, cfg.KValues)
}

func TestScore_FoundAtTop(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{"kombu": {42, 7, 9}})

	res := Score(context.Background(), query("kombu", 42), r, Config{TopK: 10})

	assert.Equal(t, OutcomeFound, res.Outcome)
	assert.True(t, res.FoundAny())
	assert.InDelta(t, 1.0, res.Recall[1], 1e-9)
	assert.InDelta(t, 1.0, res.Recall[3], 1e-9)
	best, ok := res.Rank()
	assert.True(t, ok)
	assert.Equal(t, 1, best)
	assert.InDelta(t, 1.0, res.ReciprocalRank, 1e-9)
	assert.Equal(t, []int{42, 7, 9}, res.RetrievedIDs)
	assert.Equal(t, []float64{3, 2, 1}, res.Scores)
}

func TestScore_NotFound(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{"kombu": {7, 9, 11}})

	res := Score(context.Background(), query("kombu", 42), r, Config{TopK: 10})

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.False(t, res.FoundAny())
	assert.False(t, res.Failed())
	for _, k := range []int{1, 3, 5, 10} {
		assert.Zero(t, res.Recall[k])
	}
	assert.Zero(t, res.ReciprocalRank)
	_, ok := res.Rank()
	assert.False(t, ok)
	assert.NoError(t, res.Error)
}

func TestScore_BestRankAmongSeveral(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{"q": {7, 42, 5}})

	res := Score(context.Background(), query("q", 5, 42), r, Config{TopK: 10})

	best, ok := res.Rank()
	require.True(t, ok)
	assert.Equal(t, 2, best)
	assert.InDelta(t, 0.5, res.ReciprocalRank, 1e-9)
	assert.Zero(t, res.Recall[1])
	assert.InDelta(t, 1.0, res.Recall[3], 1e-9)
	assert.Equal(t, map[int]int{5: 3, 42: 2}, res.FoundRanks)
}

func TestScore_RetrieverFailure(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{}).Fail("q")

	res := Score(context.Background(), query("q", 1), r, Config{TopK: 10})

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, res.Failed())
	assert.False(t, res.FoundAny())
	assert.ErrorContains(t, res.Error, "unavailable")
	assert.Zero(t, res.ReciprocalRank)
	assert.Empty(t, res.RetrievedIDs)
	assert.Contains(t, res.Recall, 10)
}

func TestScore_CallsRetrieverOnceWithTopK(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{"q": {1, 2, 3}})

	Score(context.Background(), query("q", 3), r, Config{TopK: 7})

	calls := r.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, evaltest.Call{Query: "q", TopK: 7}, calls[0])
}

func TestScore_DuplicateIDsFirstOccurrenceWins(t *testing.T) {
	r := evaltest.NewRetriever(map[string][]int{"q": {9, 4, 9, 4}})

	res := Score(context.Background(), query("q", 4), r, Config{TopK: 10})

	assert.Equal(t, 2, res.FoundRanks[4])
	assert.Equal(t, []int{9, 4, 9, 4}, res.RetrievedIDs, "ranking is not filtered")
}

func TestScore_Properties(t *testing.T) {
	ranking := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	r := evaltest.NewRetriever(map[string][]int{"q": ranking})
	cfg := Config{TopK: 10}.Normalize()

	for _, expected := range [][]int{{10}, {30}, {100}, {999}, {50, 20}} {
		res := Score(context.Background(), query("q", expected...), r, cfg)

		prev := 0.0
		for _, k := range cfg.KValues {
			assert.GreaterOrEqual(t, res.Recall[k], prev)
			prev = res.Recall[k]
		}

		best, ok := res.Rank()
		if res.FoundAny() {
			require.True(t, ok)
			assert.GreaterOrEqual(t, best, 1)
			assert.LessOrEqual(t, best, cfg.TopK)
			assert.InDelta(t, 1.0/float64(best), res.ReciprocalRank, 1e-12)
		} else {
			assert.False(t, ok)
			assert.Zero(t, res.ReciprocalRank)
		}
	}
}
