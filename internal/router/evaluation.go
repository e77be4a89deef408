package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/aggregate"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/report"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/runner"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/telemetry"
	pkgserver "github.com/DjordjeVuckovic/recipe-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxTopK = 1000

type EvaluationRouter struct {
	e         *echo.Echo
	retriever retriever.Retriever
	defaults  runner.Config
	timeout   time.Duration
	collector *telemetry.Collector
	gatherer  prometheus.Gatherer
	health    pkgserver.HealthChecker
}

type Option func(*EvaluationRouter)

func WithMetrics(c *telemetry.Collector, g prometheus.Gatherer) Option {
	return func(r *EvaluationRouter) {
		r.collector = c
		r.gatherer = g
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *EvaluationRouter) { r.timeout = d }
}

func NewEvaluationRouter(e *echo.Echo, ret retriever.Retriever, defaults runner.Config, opts ...Option) *EvaluationRouter {
	r := &EvaluationRouter{
		e:         e,
		retriever: ret,
		defaults:  defaults,
		health: pkgserver.HealthCheckFunc(func(ctx context.Context) bool {
			return retriever.Healthy(ctx, ret)
		}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EvaluationRouter) Bind() {
	r.e.POST("/evaluations", r.evaluateHandler)
	r.e.GET("/health", r.healthHandler)
	if r.gatherer != nil {
		r.e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}
}

// evaluateHandler godoc
// @Summary Run an evaluation
// @Description Scores every query of the posted query set against the configured retriever and returns the evaluation report
// @Tags evaluations
// @Accept json,yaml
// @Produce json
// @Param querySet body queryset.QuerySet true "Query set"
// @Param top_k query int false "Results requested per query"
// @Param workers query int false "Concurrent queries"
// @Param format query string false "Body format: json or yaml"
// @Success 200 {object} report.Report
// @Failure 400 {object} apperr.errorBody
// @Failure 422 {object} apperr.errorBody
// @Failure 500 {object} apperr.errorBody
// @Router /evaluations [post]
func (r *EvaluationRouter) evaluateHandler(c echo.Context) error {
	cfg, err := r.runConfig(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperr.NewValidationWrap("failed to read request body", err)
	}
	if len(body) == 0 {
		return apperr.NewValidation("request body must contain a query set")
	}

	set, err := queryset.Parse(body, requestFormat(c))
	if err != nil {
		if errors.Is(err, queryset.ErrMalformedQuerySet) {
			return apperr.NewValidationWrap("invalid query set", err)
		}
		return err
	}
	set.Source = "request"

	ctx := c.Request().Context()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var opts []runner.Option
	if r.collector != nil {
		opts = append(opts, runner.WithObserver(r.collector))
	}

	run, err := runner.New(cfg, opts...).Run(ctx, set, r.retriever)
	if r.collector != nil {
		r.collector.ObserveRun(err)
	}
	if err != nil {
		if errors.Is(err, aggregate.ErrEmptyResultSet) {
			return apperr.NewUnprocessable("no query could be evaluated", err)
		}
		return err
	}

	rep, err := report.Generate(run)
	if err != nil {
		return err
	}

	slog.Info("Evaluation served", "run_id", rep.Metadata.RunID, "queries", rep.Metadata.TotalQueries)
	return c.JSON(http.StatusOK, rep)
}

func (r *EvaluationRouter) runConfig(c echo.Context) (runner.Config, error) {
	cfg := r.defaults

	if v := c.QueryParam("top_k"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil || k < 1 || k > maxTopK {
			return cfg, apperr.NewValidation("top_k must be an integer between 1 and " + strconv.Itoa(maxTopK))
		}
		cfg.TopK = k
	}
	if v := c.QueryParam("workers"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w < 1 {
			return cfg, apperr.NewValidation("workers must be a positive integer")
		}
		cfg.Workers = w
	}
	return cfg, nil
}

func requestFormat(c echo.Context) queryset.Format {
	if f := c.QueryParam("format"); f != "" {
		if strings.EqualFold(f, "yaml") || strings.EqualFold(f, "yml") {
			return queryset.FormatYAML
		}
		return queryset.FormatJSON
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderContentType), "yaml") {
		return queryset.FormatYAML
	}
	return queryset.FormatJSON
}

type healthResponse struct {
	Status    string `json:"status"`
	Retriever string `json:"retriever"`
}

// healthHandler godoc
// @Summary Retriever health
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (r *EvaluationRouter) healthHandler(c echo.Context) error {
	if !r.health.Healthy(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Retriever: r.retriever.Name()})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Retriever: r.retriever.Name()})
}
