// Package main Recipe Retrieval Evaluation API
// @title Recipe Retrieval Evaluation API
// @version 1.0
// @description Evaluates recipe retrievers against labelled knowledge-intensive query sets
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "receval",
		Short: "Evaluate recipe retrieval quality against a labelled query set",
		Long: `receval issues every query of a labelled query set against a retriever,
scores where the expected recipes ranked, and reports Recall@K, MRR, success
rate and rank statistics overall and per query type and complexity level.

Examples:
  receval evaluate --queries data/knowledge_intensive_queries.json
  receval evaluate --retriever elasticsearch --top-k 20 --workers 8
  receval index --retriever postgres --corpus data/processed_recipes.json
  receval serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("env", "", "environment name, local loads the .env file strictly (overrides APP_ENV)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	addRetrieverFlags(rootCmd)

	rootCmd.AddCommand(newEvaluateCmd(), newIndexCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
