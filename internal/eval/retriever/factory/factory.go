package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/api"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/bm25"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/es"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/pg"
)

// New builds the configured retriever. The returned cleanup releases any
// connections and is safe to call once.
func New(ctx context.Context, cfg *Config) (retriever.Retriever, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	name := cfg.DisplayName()

	var r retriever.Retriever
	switch cfg.Type {
	case BM25:
		br, err := bm25.NewFromFile(name, cfg.CorpusPath)
		if err != nil {
			return nil, nil, fmt.Errorf("create bm25 retriever: %w", err)
		}
		r = br

	case ES:
		er, err := es.New(name, es.ClientConfig{
			Addresses: nonEmpty(cfg.EsAddresses),
			IndexName: cfg.EsIndex,
			Username:  cfg.EsUsername,
			Password:  cfg.EsPassword,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create elasticsearch retriever: %w", err)
		}
		r = er

	case PG:
		pr, err := pg.New(ctx, name, pg.Config{
			Pool:     pg.PoolConfig{ConnStr: cfg.PgConnStr},
			Table:    cfg.PgTable,
			Language: cfg.PgLanguage,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create postgres retriever: %w", err)
		}
		r = pr

	case API:
		r = api.New(name, cfg.APIBaseURL, cfg.APIPath)

	default:
		return nil, nil, fmt.Errorf("unsupported retriever type %q", cfg.Type)
	}

	cleanup := func() {
		if err := r.Close(); err != nil {
			slog.Warn("Failed to close retriever", "name", name, "error", err)
		}
	}

	slog.Info("Retriever ready", "type", cfg.Type, "name", name, "rate_limit", cfg.RateLimit)
	return retriever.WithRateLimit(r, cfg.RateLimit), cleanup, nil
}
