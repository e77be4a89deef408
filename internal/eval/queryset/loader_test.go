package queryset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid json set", func(t *testing.T) {
		data := `{
  "queries": ["recipes using kombu", "dishes needing 8+ hours"],
  "query_metadata": [
    {"query": "recipes using kombu", "expected_document_ids": [42], "type": "specialty_ingredient_knowledge", "complexity_level": "rare_ingredient"},
    {"query": "dishes needing 8+ hours", "expected_document_ids": [7, 9], "type": "extreme_cooking_time_knowledge", "complexity_level": "time_intensive"}
  ],
  "generation_metadata": {"total_queries": 2, "generation_method": "knowledge_intensive_salient_facts"}
}`
		loaded, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.Total())
		assert.Empty(t, loaded.Skipped)
		assert.Equal(t, "recipes using kombu", loaded.Queries[0].Text)
		assert.Equal(t, []int{42}, loaded.Queries[0].ExpectedIDs)
		assert.Equal(t, "specialty_ingredient_knowledge", loaded.Queries[0].Category)
		assert.Equal(t, "rare_ingredient", loaded.Queries[0].Difficulty)
		assert.Equal(t, 1, loaded.Queries[1].Index)
		require.NotNil(t, loaded.GenerationMetadata)
		assert.Equal(t, "knowledge_intensive_salient_facts", loaded.GenerationMetadata.GenerationMethod)
	})

	t.Run("valid yaml set", func(t *testing.T) {
		data := `
query_metadata:
  - query: saffron risotto
    expected_document_ids: [3]
    type: specialty_ingredient_knowledge
    complexity_level: rare_ingredient
`
		loaded, err := Parse([]byte(data), FormatYAML)
		require.NoError(t, err)
		require.Len(t, loaded.Queries, 1)
		assert.Equal(t, []int{3}, loaded.Queries[0].ExpectedIDs)
	})

	t.Run("empty expected ids are skipped", func(t *testing.T) {
		data := `{"query_metadata": [
  {"query": "a", "expected_document_ids": [], "type": "t", "complexity_level": "c"},
  {"query": "b", "expected_document_ids": [1], "type": "t", "complexity_level": "c"}
]}`
		loaded, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		require.Len(t, loaded.Queries, 1)
		assert.Equal(t, "b", loaded.Queries[0].Text)
		require.Len(t, loaded.Skipped, 1)
		assert.Equal(t, 0, loaded.Skipped[0].Index)
		assert.Equal(t, "a", loaded.Skipped[0].Query)
	})

	t.Run("missing or null expected ids are skipped", func(t *testing.T) {
		data := `{"query_metadata": [
  {"query": "recipes using kombu", "expected_document_ids": [42], "type": "t", "complexity_level": "c"},
  {"query": "dishes needing 8 hours", "type": "t", "complexity_level": "c"},
  {"query": "saffron dishes", "expected_document_ids": null}
]}`
		loaded, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Total())
		assert.Equal(t, "recipes using kombu", loaded.Queries[0].Text)
		require.Len(t, loaded.Skipped, 2)
		assert.Equal(t, 1, loaded.Skipped[0].Index)
		assert.Equal(t, "missing expected_document_ids", loaded.Skipped[0].Reason)
		assert.Equal(t, "saffron dishes", loaded.Skipped[1].Query)
	})

	t.Run("yaml record without expected ids is skipped", func(t *testing.T) {
		data := `
query_metadata:
  - query: miso glazed cod
  - query: saffron risotto
    expected_document_ids: [3]
`
		loaded, err := Parse([]byte(data), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Total())
		require.Len(t, loaded.Skipped, 1)
		assert.Equal(t, "miso glazed cod", loaded.Skipped[0].Query)
	})

	t.Run("missing labels become unknown", func(t *testing.T) {
		data := `{"query_metadata": [{"query": "a", "expected_document_ids": [1]}]}`
		loaded, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, UnknownLabel, loaded.Queries[0].Category)
		assert.Equal(t, UnknownLabel, loaded.Queries[0].Difficulty)
	})

	t.Run("duplicate expected ids collapse", func(t *testing.T) {
		data := `{"query_metadata": [{"query": "a", "expected_document_ids": [5, 5, 2]}]}`
		loaded, err := Parse([]byte(data), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 2}, loaded.Queries[0].ExpectedIDs)
	})
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		reason string
	}{
		{name: "not json", data: `{"query_metadata": [`, reason: "decode"},
		{name: "no metadata", data: `{"queries": ["a"]}`, reason: "missing query_metadata"},
		{name: "missing query text", data: `{"query_metadata": [{"expected_document_ids": [1]}]}`, reason: "no query text"},
		{name: "wrong id type", data: `{"query_metadata": [{"query": "a", "expected_document_ids": ["x"]}]}`, reason: "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedQuerySet))
			assert.ErrorContains(t, err, tt.reason)

			var me *MalformedError
			assert.True(t, errors.As(err, &me))
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.yml")
	content := `
query_metadata:
  - query: miso glazed cod
    expected_document_ids: [11, 12]
    type: specialty_ingredient_knowledge
    complexity_level: rare_ingredient
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Source)
	assert.Equal(t, 1, loaded.Total())
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "read query set file")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("a/b.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("a/b"))
}
