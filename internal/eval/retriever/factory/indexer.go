package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/es"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/pg"
)

var ErrIndexingUnsupported = errors.New("retriever type does not support indexing")

// Indexer loads a corpus into a retriever's backing store.
type Indexer interface {
	IndexAll(ctx context.Context, recipes []corpus.Recipe) error
}

// NewIndexer builds the indexer matching cfg.Type. Only the elasticsearch
// and postgres back-ends keep their own copy of the corpus.
func NewIndexer(ctx context.Context, cfg *Config) (Indexer, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.Type {
	case ES:
		ix, err := es.NewIndexer(ctx, es.ClientConfig{
			Addresses: nonEmpty(cfg.EsAddresses),
			IndexName: cfg.EsIndex,
			Username:  cfg.EsUsername,
			Password:  cfg.EsPassword,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create elasticsearch indexer: %w", err)
		}
		return ix, func() {}, nil

	case PG:
		ix, err := pg.NewIndexer(ctx, pg.Config{
			Pool:     pg.PoolConfig{ConnStr: cfg.PgConnStr},
			Table:    cfg.PgTable,
			Language: cfg.PgLanguage,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create postgres indexer: %w", err)
		}
		return ix, ix.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrIndexingUnsupported, cfg.Type)
	}
}
