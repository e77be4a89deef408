package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Recipe is one document of the processed recipe corpus.
type Recipe struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
	Minutes     int      `json:"minutes"`
}

// Text flattens the searchable recipe fields into a single document body.
func (r *Recipe) Text() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteByte(' ')
	b.WriteString(r.Description)
	for _, part := range [][]string{r.Ingredients, r.Steps, r.Tags} {
		for _, s := range part {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
	if r.Minutes > 0 {
		fmt.Fprintf(&b, " %d minutes", r.Minutes)
	}
	return b.String()
}

func Load(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse corpus JSON: %w", err)
	}
	return recipes, nil
}
