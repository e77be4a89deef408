package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/DjordjeVuckovic/recipe-hunter/docs"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever/factory"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/router"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/server"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve evaluations over HTTP",
		RunE:  runServe,
	}
	addRunFlags(cmd)
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg, err := server.LoadConfig()
	if err != nil {
		return err
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

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := telemetry.New(reg)

	e := echo.New()
	srv := server.NewServer(e, srvCfg, collector).SetupOpenApi("/swagger/*")

	router.NewEvaluationRouter(e, ret, runnerConfig(cmd),
		router.WithMetrics(collector, reg),
		router.WithTimeout(srvCfg.EvaluationTimeout),
	).Bind()

	return srv.Start(ctx)
}
