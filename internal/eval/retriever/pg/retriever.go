package pg

import (
	"context"
	"fmt"
	"regexp"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DefaultTable = "recipes"

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Pool     PoolConfig
	Table    string
	Language string
}

// Retriever ranks recipes with PostgreSQL full-text search over a
// precomputed search_vector column.
type Retriever struct {
	name  string
	pool  *ConnectionPool
	query string
}

var _ retriever.Retriever = (*Retriever)(nil)

func New(ctx context.Context, name string, cfg Config) (*Retriever, error) {
	q, err := buildSearchSQL(cfg.Table, cfg.Language)
	if err != nil {
		return nil, err
	}
	pool, err := NewConnectionPool(ctx, cfg.Pool)
	if err != nil {
		return nil, err
	}
	return &Retriever{name: name, pool: pool, query: q}, nil
}

func buildSearchSQL(table, language string) (string, error) {
	if table == "" {
		table = DefaultTable
	}
	if language == "" {
		language = "english"
	}
	if !identRegex.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	if !identRegex.MatchString(language) {
		return "", fmt.Errorf("invalid text search language %q", language)
	}
	return fmt.Sprintf(`
		SELECT id, ts_rank_cd(search_vector, plainto_tsquery('%[2]s', $1))::float8 AS rank
		FROM %[1]s
		WHERE search_vector @@ plainto_tsquery('%[2]s', $1)
		ORDER BY rank DESC, id ASC
		LIMIT $2`, table, language), nil
}

func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]retriever.Hit, error) {
	return search(ctx, r.pool.conn, r.query, query, topK)
}

func search(ctx context.Context, db *pgxpool.Pool, sql, query string, topK int) ([]retriever.Hit, error) {
	rows, err := db.Query(ctx, sql, query, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	hits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (retriever.Hit, error) {
		var h retriever.Hit
		err := row.Scan(&h.DocumentID, &h.Score)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan search results: %w", err)
	}
	return hits, nil
}

// Healthy reports whether the database answers a ping.
func (r *Retriever) Healthy(ctx context.Context) bool {
	return r.pool.Ping(ctx) == nil
}

func (r *Retriever) Name() string { return r.name }

func (r *Retriever) Close() error {
	r.pool.Close()
	return nil
}
