package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	content := `[{"id": 1, "name": "Dashi", "ingredients": ["kombu", "bonito"], "minutes": 30}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	recipes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 1, recipes[0].ID)
	assert.Equal(t, []string{"kombu", "bonito"}, recipes[0].Ingredients)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse corpus JSON")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read corpus file")
}

func TestRecipe_Text(t *testing.T) {
	r := Recipe{
		Name:        "Dashi",
		Description: "clear broth",
		Ingredients: []string{"kombu"},
		Steps:       []string{"steep"},
		Tags:        []string{"japanese"},
		Minutes:     30,
	}
	assert.Equal(t, "Dashi clear broth kombu steep japanese 30 minutes", r.Text())
}
