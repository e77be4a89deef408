package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/report"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/factory"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/runner"
	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run a query set against a retriever and write the report",
		RunE:  runEvaluate,
	}

	cmd.Flags().StringP("queries", "q", "data/knowledge_intensive_queries.json", "query set file (.json, .yaml)")
	cmd.Flags().StringP("output", "o", "results/retrieval_results.json", "report output path")
	cmd.Flags().Bool("quiet", false, "do not print the summary table")
	addRunFlags(cmd)
	return cmd
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	queriesPath, _ := cmd.Flags().GetString("queries")
	outputPath, _ := cmd.Flags().GetString("output")
	quiet, _ := cmd.Flags().GetBool("quiet")

	set, err := queryset.LoadFromFile(queriesPath)
	if err != nil {
		return fmt.Errorf("load query set: %w", err)
	}

	rcfg, err := retrieverConfig(cmd)
	if err != nil {
		return err
	}
	ret, cleanup, err := factory.New(ctx, rcfg)
	if err != nil {
		return err
	}
	defer cleanup()

	run, err := runner.New(runnerConfig(cmd)).Run(ctx, set, ret)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	rep, err := report.Generate(run)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(rep, outputPath); err != nil {
		return err
	}
	slog.Info("Report written", "path", outputPath, "run_id", rep.Metadata.RunID)

	if !quiet {
		report.WriteTable(rep, cmd.OutOrStdout())
	}
	return nil
}
