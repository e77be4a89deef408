package es

import "github.com/elastic/go-elasticsearch/v8"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	Fields    []string
}

var DefaultFields = []string{"name^2", "description", "ingredients^1.5", "steps", "tags"}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
