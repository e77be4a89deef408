package es

import (
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/corpus"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

const recipeAnalyzer = "recipe_analyzer"

// RecipeDocument is the indexed form of a corpus recipe.
type RecipeDocument struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Tags        []string  `json:"tags"`
	Minutes     int       `json:"minutes"`
	IndexedAt   time.Time `json:"indexed_at"`
}

func toDocument(r *corpus.Recipe, now time.Time) RecipeDocument {
	return RecipeDocument{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Tags:        r.Tags,
		Minutes:     r.Minutes,
		IndexedAt:   now,
	}
}

func buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				recipeAnalyzer: types.StandardAnalyzer{
					Stopwords: []string{"_english_"},
				},
			},
		},
	}
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewIntegerNumberProperty(),
			"name":        textProperty(true),
			"description": textProperty(false),
			"ingredients": textProperty(true),
			"steps":       textProperty(false),
			"tags":        textProperty(true),
			"minutes":     types.NewIntegerNumberProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}
}

func textProperty(withKeyword bool) types.Property {
	analyzer := recipeAnalyzer
	p := types.NewTextProperty()
	p.Analyzer = &analyzer
	if withKeyword {
		p.Fields = map[string]types.Property{
			"keyword": types.NewKeywordProperty(),
		}
	}
	return p
}
