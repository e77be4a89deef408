package es

import (
	"encoding/json"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHits(t *testing.T) {
	s1 := types.Float64(7.5)
	s2 := types.Float64(3.25)
	hits := []types.Hit{
		{Source_: json.RawMessage(`{"id": 42, "name": "dashi"}`), Score_: &s1},
		{Source_: json.RawMessage(`{"id": 7}`), Score_: &s2},
	}

	out, err := mapHits(hits)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 42, out[0].DocumentID)
	assert.InDelta(t, 7.5, out[0].Score, 1e-9)
	assert.Equal(t, 7, out[1].DocumentID)
}

func TestMapHits_BadSource(t *testing.T) {
	_, err := mapHits([]types.Hit{{Source_: json.RawMessage(`{"id": "x"}`)}})
	assert.ErrorContains(t, err, "unmarshal document")
}

func TestNew_RequiresIndex(t *testing.T) {
	_, err := New("es", ClientConfig{Addresses: []string{"http://localhost:9200"}})
	assert.ErrorContains(t, err, "index name")
}

func TestNew_DefaultFields(t *testing.T) {
	r, err := New("es", ClientConfig{Addresses: []string{"http://localhost:9200"}, IndexName: "recipes"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFields, r.fields)
	assert.Equal(t, "es", r.Name())
}
