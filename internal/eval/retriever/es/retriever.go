package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// Retriever ranks recipes with the index's BM25 similarity through a multi_match query.
type Retriever struct {
	name      string
	client    *elasticsearch.TypedClient
	indexName string
	fields    []string
}

var _ retriever.Retriever = (*Retriever)(nil)

func New(name string, config ClientConfig) (*Retriever, error) {
	if config.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch index name is required")
	}
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	fields := config.Fields
	if len(fields) == 0 {
		fields = DefaultFields
	}

	return &Retriever{
		name:      name,
		client:    client,
		indexName: config.IndexName,
		fields:    fields,
	}, nil
}

func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]retriever.Hit, error) {
	or := operator.Or
	scoreDesc := sortorder.Desc
	idAsc := sortorder.Asc

	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:    query,
				Fields:   r.fields,
				Operator: &or,
			},
		}).
		Size(topK).
		TrackScores(true).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"_score": {Order: &scoreDesc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &idAsc}}},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "query", query)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	return mapHits(res.Hits.Hits)
}

type recipeSource struct {
	ID int `json:"id"`
}

func mapHits(hits []types.Hit) ([]retriever.Hit, error) {
	out := make([]retriever.Hit, 0, len(hits))
	for _, hit := range hits {
		var src recipeSource
		if err := json.Unmarshal(hit.Source_, &src); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		var score float64
		if hit.Score_ != nil {
			score = float64(*hit.Score_)
		}
		out = append(out, retriever.Hit{DocumentID: src.ID, Score: score})
	}
	return out, nil
}

func (r *Retriever) Healthy(ctx context.Context) bool {
	ok, err := r.client.Ping().Do(ctx)
	return err == nil && ok
}

func (r *Retriever) Name() string { return r.name }
func (r *Retriever) Close() error { return nil }
