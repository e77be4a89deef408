package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/factory"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Load the recipe corpus into the elasticsearch or postgres back-end",
		RunE:  runIndex,
	}
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rcfg, err := retrieverConfig(cmd)
	if err != nil {
		return err
	}

	recipes, err := corpus.Load(rcfg.CorpusPath)
	if err != nil {
		return err
	}

	ix, cleanup, err := factory.NewIndexer(ctx, rcfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := ix.IndexAll(ctx, recipes); err != nil {
		return fmt.Errorf("index corpus: %w", err)
	}

	slog.Info("Corpus indexed", "retriever", rcfg.Type, "recipes", len(recipes))
	return nil
}
