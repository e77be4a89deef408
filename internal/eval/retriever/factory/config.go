package factory

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Type string

const (
	BM25 Type = "bm25"
	ES   Type = "elasticsearch"
	PG   Type = "postgres"
	API  Type = "api"
)

var validTypes = map[Type]bool{BM25: true, ES: true, PG: true, API: true}

// Config selects and configures one retriever back-end.
type Config struct {
	Type      Type    `envconfig:"RETRIEVER_TYPE" default:"bm25"`
	Name      string  `envconfig:"RETRIEVER_NAME"`
	RateLimit float64 `envconfig:"RETRIEVER_RATE_LIMIT"`

	CorpusPath string `envconfig:"CORPUS_PATH" default:"data/processed_recipes.json"`

	EsAddresses []string `envconfig:"ES_ADDRESSES"`
	EsIndex     string   `envconfig:"ES_INDEX_NAME" default:"recipes"`
	EsUsername  string   `envconfig:"ES_USERNAME"`
	EsPassword  string   `envconfig:"ES_PASSWORD"`

	PgConnStr  string `envconfig:"PG_CONNECTION_STRING"`
	PgTable    string `envconfig:"PG_TABLE" default:"recipes"`
	PgLanguage string `envconfig:"PG_LANGUAGE" default:"english"`

	APIBaseURL string `envconfig:"API_BASE_URL"`
	APIPath    string `envconfig:"API_SEARCH_PATH" default:"/search"`
}

func LoadEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process retriever env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !validTypes[c.Type] {
		return fmt.Errorf("invalid retriever type %q, expected one of bm25, elasticsearch, postgres, api", c.Type)
	}
	switch c.Type {
	case BM25:
		if c.CorpusPath == "" {
			return fmt.Errorf("bm25 retriever requires a corpus path")
		}
	case ES:
		if len(nonEmpty(c.EsAddresses)) == 0 || c.EsIndex == "" {
			return fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	case PG:
		if c.PgConnStr == "" {
			return fmt.Errorf("postgres connection string is not set")
		}
	case API:
		if c.APIBaseURL == "" {
			return fmt.Errorf("api retriever requires a base url")
		}
	}
	return nil
}

func (c *Config) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.Type)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
