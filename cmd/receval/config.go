package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/factory"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/runner"
	"github.com/DjordjeVuckovic/recipe-hunter/pkg/config/env"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const defaultEnvPath = "cmd/receval/.env"

type appConfig struct {
	Env      string `envconfig:"APP_ENV" default:"local"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	TopK     int    `envconfig:"EVAL_TOP_K" default:"10"`
	Workers  int    `envconfig:"EVAL_WORKERS"`
	KValues  []int  `envconfig:"EVAL_K_VALUES"`
}

var app appConfig

func setup(cmd *cobra.Command) error {
	if err := envconfig.Process("", &app); err != nil {
		return fmt.Errorf("process app env: %w", err)
	}
	if v, _ := cmd.Flags().GetString("env"); v != "" {
		app.Env = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		app.LogLevel = v
	}

	if err := env.LoadDotEnv(app.Env, defaultEnvPath); err != nil {
		slog.Warn("Continuing without .env file", "error", err)
	}
	// .env may have changed the environment
	if err := envconfig.Process("", &app); err != nil {
		return fmt.Errorf("process app env: %w", err)
	}

	level, err := parseLevel(app.LogLevel)
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(level)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func addRetrieverFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("retriever", "", "retriever type: bm25, elasticsearch, postgres, api (overrides RETRIEVER_TYPE)")
	f.String("retriever-name", "", "display name used in reports (overrides RETRIEVER_NAME)")
	f.String("corpus", "", "path to the processed recipe corpus (overrides CORPUS_PATH)")
	f.Float64("rate-limit", 0, "max retriever calls per second, 0 disables (overrides RETRIEVER_RATE_LIMIT)")
}

// retrieverConfig reads retriever env config and applies explicitly set flags.
func retrieverConfig(cmd *cobra.Command) (*factory.Config, error) {
	cfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("retriever") {
		v, _ := f.GetString("retriever")
		cfg.Type = factory.Type(v)
	}
	if f.Changed("retriever-name") {
		cfg.Name, _ = f.GetString("retriever-name")
	}
	if f.Changed("corpus") {
		cfg.CorpusPath, _ = f.GetString("corpus")
	}
	if f.Changed("rate-limit") {
		cfg.RateLimit, _ = f.GetFloat64("rate-limit")
	}
	return cfg, nil
}

// runnerConfig merges app env defaults with the evaluate/serve flags.
func runnerConfig(cmd *cobra.Command) runner.Config {
	cfg := runner.DefaultConfig()
	cfg.TopK = app.TopK
	cfg.KValues = app.KValues
	if app.Workers > 0 {
		cfg.Workers = app.Workers
	}

	f := cmd.Flags()
	if f.Changed("top-k") {
		cfg.TopK, _ = f.GetInt("top-k")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("k") {
		cfg.KValues, _ = f.GetIntSlice("k")
	}
	return cfg
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top-k", runner.DefaultTopK, "number of results requested per query (overrides EVAL_TOP_K)")
	cmd.Flags().Int("workers", 0, "concurrent queries, defaults to the number of CPUs (overrides EVAL_WORKERS)")
	cmd.Flags().IntSlice("k", nil, "extra Recall@K cutoffs, 1,3,5,10 and top-k are always reported")
}
