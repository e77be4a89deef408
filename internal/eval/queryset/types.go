package queryset

const UnknownLabel = "unknown"

// QuerySet mirrors the on-disk layout produced by the synthetic query generator.
type QuerySet struct {
	Queries            []string            `json:"queries" yaml:"queries"`
	Metadata           []RecordSpec        `json:"query_metadata" yaml:"query_metadata"`
	GenerationMetadata *GenerationMetadata `json:"generation_metadata,omitempty" yaml:"generation_metadata,omitempty"`
}

// RecordSpec is a raw metadata entry. ExpectedIDs is a pointer so a missing
// or null key is skipped with its own reason.
type RecordSpec struct {
	Query           string `json:"query" yaml:"query"`
	ExpectedIDs     *[]int `json:"expected_document_ids" yaml:"expected_document_ids"`
	Type            string `json:"type" yaml:"type"`
	ComplexityLevel string `json:"complexity_level" yaml:"complexity_level"`
}

type GenerationMetadata struct {
	TotalQueries     int      `json:"total_queries" yaml:"total_queries"`
	GenerationMethod string   `json:"generation_method" yaml:"generation_method"`
	Focus            string   `json:"focus,omitempty" yaml:"focus,omitempty"`
	QueryTypes       []string `json:"query_types,omitempty" yaml:"query_types,omitempty"`
}

// Query is a validated record ready for scoring.
type Query struct {
	Index       int
	Text        string
	ExpectedIDs []int
	Category    string
	Difficulty  string
}

type SkippedRecord struct {
	Index  int    `json:"index"`
	Query  string `json:"query"`
	Reason string `json:"reason"`
}

type LoadedSet struct {
	Queries            []Query
	Skipped            []SkippedRecord
	GenerationMetadata *GenerationMetadata
	Source             string
}

// Total is the number of queries that survived validation.
func (ls *LoadedSet) Total() int {
	return len(ls.Queries)
}
