package es

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/stretchr/testify/assert"
)

func TestToDocument(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := toDocument(&corpus.Recipe{ID: 9, Name: "Miso soup", Tags: []string{"japanese"}, Minutes: 15}, now)

	assert.Equal(t, 9, doc.ID)
	assert.Equal(t, "Miso soup", doc.Name)
	assert.Equal(t, []string{"japanese"}, doc.Tags)
	assert.Equal(t, now, doc.IndexedAt)
}

func TestBuildMapping(t *testing.T) {
	m := buildMapping()
	for _, field := range []string{"id", "name", "description", "ingredients", "steps", "tags", "minutes"} {
		assert.Contains(t, m.Properties, field)
	}
	assert.Contains(t, buildSettings().Analysis.Analyzer, recipeAnalyzer)
}
