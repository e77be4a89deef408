package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/jackc/pgx/v5"
)

var recipeColumns = []string{"id", "name", "description", "ingredients", "steps", "tags", "minutes"}

// Indexer copies the recipe corpus into the recipes table. search_vector is
// maintained by a trigger, see db/migrations.
type Indexer struct {
	pool  *ConnectionPool
	table string
}

func NewIndexer(ctx context.Context, cfg Config) (*Indexer, error) {
	if _, err := buildSearchSQL(cfg.Table, cfg.Language); err != nil {
		return nil, err
	}
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	pool, err := NewConnectionPool(ctx, cfg.Pool)
	if err != nil {
		return nil, err
	}
	return &Indexer{pool: pool, table: table}, nil
}

// IndexAll replaces the table content with recipes in one transaction.
func (ix *Indexer) IndexAll(ctx context.Context, recipes []corpus.Recipe) error {
	rows := make([][]any, len(recipes))
	for i, r := range recipes {
		rows[i] = []any{r.ID, r.Name, r.Description, r.Ingredients, r.Steps, r.Tags, r.Minutes}
	}

	tx, err := ix.pool.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+pgx.Identifier{ix.table}.Sanitize()); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", ix.table, err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{ix.table}, recipeColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert recipes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recipes: %w", err)
	}

	slog.Info("Bulk insert completed", "table", ix.table, "rows", n)
	return nil
}

func (ix *Indexer) Close() {
	ix.pool.Close()
}
