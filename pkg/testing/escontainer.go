package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const elasticsearchImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts a single-node Elasticsearch without security and
// terminates it when tb finishes.
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	esContainer, err := elasticsearch.Run(ctx,
		elasticsearchImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := esContainer.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get elasticsearch host: %v", err)
	}
	port, err := esContainer.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
