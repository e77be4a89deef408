//go:build integration

package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	pkgtesting "github.com/DjordjeVuckovic/recipe-hunter/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriever_Integration(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "recipes_test"}

	ix, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, ix.IndexAll(ctx, []corpus.Recipe{
		{ID: 1, Name: "Dashi broth", Ingredients: []string{"kombu", "bonito flakes"}},
		{ID: 2, Name: "Braised lamb", Ingredients: []string{"lamb", "garlic"}},
		{ID: 3, Name: "Garlic toast", Ingredients: []string{"bread", "garlic"}},
	}))

	r, err := New("es", cfg)
	require.NoError(t, err)
	assert.True(t, r.Healthy(ctx))

	hits, err := r.Retrieve(ctx, "kombu", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].DocumentID)

	hits, err = r.Retrieve(ctx, "garlic", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
}
