package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/pkg/stringsutil"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	UseHttp2          bool          `envconfig:"USE_HTTP2"`
	CorsOrigins       []string      `envconfig:"CORS_ORIGINS"`
	BodyLimit         string        `envconfig:"BODY_LIMIT" default:"10M"`
	EvaluationTimeout time.Duration `envconfig:"EVALUATION_TIMEOUT" default:"5m"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process server env: %w", err)
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	cfg.CorsOrigins = normalizeOrigins(cfg.CorsOrigins)
	return &cfg, nil
}

func normalizeOrigins(origins []string) []string {
	origins = stringsutil.RemoveEmptyStrings(origins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
