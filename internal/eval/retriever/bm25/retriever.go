package bm25

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
)

type Retriever struct {
	name  string
	index *Index
}

var _ retriever.Retriever = (*Retriever)(nil)

func New(name string, recipes []corpus.Recipe) *Retriever {
	idx := NewIndex()
	for i := range recipes {
		idx.Add(recipes[i].ID, recipes[i].Text())
	}
	slog.Info("Built in-memory BM25 index", "name", name, "documents", idx.Len())
	return &Retriever{name: name, index: idx}
}

func NewFromFile(name, corpusPath string) (*Retriever, error) {
	recipes, err := corpus.Load(corpusPath)
	if err != nil {
		return nil, err
	}
	return New(name, recipes), nil
}

func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]retriever.Hit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := r.index.Search(query, topK)
	hits := make([]retriever.Hit, len(results))
	for i, s := range results {
		hits[i] = retriever.Hit{DocumentID: s.docID, Score: s.score}
	}
	return hits, nil
}

func (r *Retriever) Name() string { return r.name }
func (r *Retriever) Close() error { return nil }
