package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/retriever"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "bm25 ok", cfg: Config{Type: BM25, CorpusPath: "recipes.json"}},
		{name: "bm25 without corpus", cfg: Config{Type: BM25}, wantErr: "corpus path"},
		{name: "es ok", cfg: Config{Type: ES, EsAddresses: []string{"http://localhost:9200"}, EsIndex: "recipes"}},
		{name: "es blank addresses", cfg: Config{Type: ES, EsAddresses: []string{" "}, EsIndex: "recipes"}, wantErr: "incomplete"},
		{name: "pg without conn", cfg: Config{Type: PG}, wantErr: "connection string"},
		{name: "api without url", cfg: Config{Type: API}, wantErr: "base url"},
		{name: "unknown type", cfg: Config{Type: "mysql"}, wantErr: "invalid retriever type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RETRIEVER_TYPE", "elasticsearch")
	t.Setenv("ES_ADDRESSES", "http://a:9200,http://b:9200")
	t.Setenv("RETRIEVER_RATE_LIMIT", "25")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ES, cfg.Type)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.EsAddresses)
	assert.Equal(t, "recipes", cfg.EsIndex)
	assert.InDelta(t, 25.0, cfg.RateLimit, 1e-9)
	assert.Equal(t, "elasticsearch", cfg.DisplayName())
}

func TestNew_BM25(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "name": "kombu dashi"}]`), 0644))

	r, cleanup, err := New(context.Background(), &Config{Type: BM25, Name: "baseline", CorpusPath: path, RateLimit: 100})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "baseline", r.Name())
	_, limited := r.(*retriever.RateLimited)
	assert.True(t, limited)

	hits, err := r.Retrieve(context.Background(), "kombu", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].DocumentID)
}

func TestNew_API(t *testing.T) {
	r, cleanup, err := New(context.Background(), &Config{Type: API, APIBaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, "api", r.Name())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, _, err := New(context.Background(), &Config{Type: PG})
	assert.Error(t, err)
}

func TestNewIndexer_Unsupported(t *testing.T) {
	tests := []Config{
		{Type: BM25, CorpusPath: "recipes.json"},
		{Type: API, APIBaseURL: "http://localhost:8080"},
	}
	for _, cfg := range tests {
		t.Run(string(cfg.Type), func(t *testing.T) {
			_, _, err := NewIndexer(context.Background(), &cfg)
			assert.ErrorIs(t, err, ErrIndexingUnsupported)
		})
	}
}
