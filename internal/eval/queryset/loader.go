package queryset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func LoadFromFile(path string) (*LoadedSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query set file: %w", err)
	}
	loaded, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	loaded.Source = path

	slog.Info("Loaded query set",
		"path", path,
		"queries", loaded.Total(),
		"skipped", len(loaded.Skipped))
	return loaded, nil
}

func Parse(data []byte, format Format) (*LoadedSet, error) {
	var qs QuerySet
	if err := decode(data, format, &qs); err != nil {
		return nil, malformed(-1, "decode "+string(format), err)
	}
	if qs.Metadata == nil {
		return nil, malformed(-1, "missing query_metadata", nil)
	}
	if len(qs.Queries) > 0 && len(qs.Queries) != len(qs.Metadata) {
		slog.Warn("Query list and metadata list differ in length, using metadata",
			"queries", len(qs.Queries),
			"metadata", len(qs.Metadata))
	}

	loaded := &LoadedSet{
		Queries:            make([]Query, 0, len(qs.Metadata)),
		GenerationMetadata: qs.GenerationMetadata,
	}

	for i, rec := range qs.Metadata {
		text := strings.TrimSpace(rec.Query)
		if text == "" {
			return nil, malformed(i, fmt.Sprintf("record at index %d has no query text", i), nil)
		}
		if rec.ExpectedIDs == nil {
			loaded.skip(i, text, "missing expected_document_ids")
			continue
		}

		expected := dedupe(*rec.ExpectedIDs)
		if len(expected) == 0 {
			loaded.skip(i, text, "no expected document ids")
			continue
		}

		loaded.Queries = append(loaded.Queries, Query{
			Index:       i,
			Text:        text,
			ExpectedIDs: expected,
			Category:    labelOrUnknown(rec.Type),
			Difficulty:  labelOrUnknown(rec.ComplexityLevel),
		})
	}

	return loaded, nil
}

func (ls *LoadedSet) skip(index int, query, reason string) {
	slog.Warn("Skipping query", "index", index, "query", query, "reason", reason)
	ls.Skipped = append(ls.Skipped, SkippedRecord{
		Index:  index,
		Query:  query,
		Reason: reason,
	})
}

func decode(data []byte, format Format, qs *QuerySet) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, qs)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		return dec.Decode(qs)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func labelOrUnknown(label string) string {
	if strings.TrimSpace(label) == "" {
		return UnknownLabel
	}
	return label
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
