package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// Indexer loads the recipe corpus into an Elasticsearch index.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	if config.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch index name is required")
	}
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	ix := &Indexer{client: client, indexName: config.IndexName}
	if err := ix.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return ix, nil
}

func (ix *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := ix.client.Indices.Exists(ix.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", ix.indexName)
		return nil
	}

	settings := buildSettings()
	mappings := buildMapping()

	res, err := ix.client.Indices.Create(ix.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", ix.indexName)
	return nil
}

// IndexAll bulk-indexes recipes using the recipe id as document id and
// refreshes the index so the documents are immediately searchable.
func (ix *Indexer) IndexAll(ctx context.Context, recipes []corpus.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         ix.indexName,
		Client:        ix.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now().UTC()

	for i := range recipes {
		doc := toDocument(&recipes[i], now)
		body, err := json.Marshal(doc)
		if err != nil {
			failed.Add(1)
			slog.Error("Failed to marshal recipe", "error", err, "id", doc.ID)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: strconv.Itoa(doc.ID),
			Body:       bytes.NewReader(body),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("Bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("Bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("Failed to add recipe to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	if _, err := ix.client.Indices.Refresh().Index(ix.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(recipes),
		"index", ix.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d recipes", n, len(recipes))
	}
	return nil
}
