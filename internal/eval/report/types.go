package report

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

const EvaluationMethod = "bm25_knowledge_intensive"

// Report is the serialized outcome of one evaluation run. Rank statistics
// are pointers so that "no query found anything" encodes as null.
type Report struct {
	Metadata     Metadata                `json:"evaluation_metadata"`
	Overall      GroupMetrics            `json:"overall_metrics"`
	ByQueryType  map[string]GroupMetrics `json:"metrics_by_query_type"`
	ByComplexity map[string]GroupMetrics `json:"metrics_by_complexity_level"`
	GroupErrors  []GroupError            `json:"group_errors,omitempty"`
	Detailed     []QueryDetail           `json:"detailed_results"`

	queryTypeOrder  []string
	complexityOrder []string
}

type Metadata struct {
	RunID            string         `json:"run_id"`
	Timestamp        time.Time      `json:"timestamp"`
	EvaluationMethod string         `json:"evaluation_method"`
	Retriever        string         `json:"retriever"`
	QuerySet         string         `json:"query_set,omitempty"`
	TopK             int            `json:"top_k_retrieved"`
	KValues          []int          `json:"k_values"`
	TotalQueries     int            `json:"total_queries_evaluated"`
	SkippedQueries   int            `json:"skipped_queries"`
	FailedQueries    int            `json:"failed_queries"`
	DurationMs       float64        `json:"duration_ms"`
	Latency          *LatencySummary `json:"latency,omitempty"`
}

type LatencySummary struct {
	MeanMs  float64 `json:"mean_ms"`
	P50Ms   float64 `json:"p50_ms"`
	P95Ms   float64 `json:"p95_ms"`
	P99Ms   float64 `json:"p99_ms"`
	MaxMs   float64 `json:"max_ms"`
	Samples int     `json:"samples"`
}

// GroupMetrics and QueryDetail serialize their recall values as flat
// recall_at_<k> keys next to the other fields.
type GroupMetrics struct {
	Count                int                `json:"count"`
	Evaluated            int                `json:"evaluated"`
	QueriesFound         int                `json:"queries_found"`
	QueriesNotFound      int                `json:"queries_not_found"`
	FailedQueries        int                `json:"failed_queries"`
	Recall               map[string]float64 `json:"-"`
	MeanReciprocalRank   float64            `json:"mean_reciprocal_rank"`
	SuccessRate          float64            `json:"success_rate"`
	AverageRankWhenFound *float64           `json:"average_rank_when_found"`
	MedianRankWhenFound  *float64           `json:"median_rank_when_found"`
}

type GroupError struct {
	Dimension string `json:"dimension"`
	Group     string `json:"group"`
	Count     int    `json:"count"`
	Error     string `json:"error"`
}

type QueryDetail struct {
	Query           string             `json:"query"`
	QueryType       string             `json:"query_type"`
	ComplexityLevel string             `json:"complexity_level"`
	ExpectedIDs     []int              `json:"expected_recipe_ids"`
	RetrievedIDs    []int              `json:"retrieved_recipe_ids"`
	FoundRanks      map[int]int        `json:"found_recipe_ranks"`
	TargetRank      *int               `json:"target_rank"`
	Recall          map[string]float64 `json:"-"`
	ReciprocalRank  float64            `json:"reciprocal_rank"`
	Scores          []float64          `json:"retrieval_scores"`
	FoundAny        bool               `json:"found_any"`
	Status          string             `json:"status"`
	Error           string             `json:"error,omitempty"`
	LatencyMs       float64            `json:"latency_ms"`
}

func (g GroupMetrics) MarshalJSON() ([]byte, error) {
	type plain GroupMetrics
	return marshalWithRecall(plain(g), g.Recall)
}

func (g *GroupMetrics) UnmarshalJSON(data []byte) error {
	type plain GroupMetrics
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	recall, err := unmarshalRecall(data)
	if err != nil {
		return err
	}
	*g = GroupMetrics(p)
	g.Recall = recall
	return nil
}

func (d QueryDetail) MarshalJSON() ([]byte, error) {
	type plain QueryDetail
	return marshalWithRecall(plain(d), d.Recall)
}

func (d *QueryDetail) UnmarshalJSON(data []byte) error {
	type plain QueryDetail
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	recall, err := unmarshalRecall(data)
	if err != nil {
		return err
	}
	*d = QueryDetail(p)
	d.Recall = recall
	return nil
}

// marshalWithRecall appends the recall keys, ordered by k, to the encoded object.
func marshalWithRecall(v any, recall map[string]float64) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(recall) == 0 {
		return base, nil
	}

	keys := make([]string, 0, len(recall))
	for key := range recall {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, _ := recallK(keys[i])
		kj, _ := recallK(keys[j])
		return ki < kj
	})

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	for i, key := range keys {
		if i > 0 || len(base) > 2 {
			buf.WriteByte(',')
		}
		value, err := json.Marshal(recall[key])
		if err != nil {
			return nil, err
		}
		buf.WriteString(strconv.Quote(key))
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalRecall(data []byte) (map[string]float64, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	recall := make(map[string]float64)
	for key, raw := range fields {
		if _, ok := recallK(key); !ok {
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		recall[key] = v
	}
	return recall, nil
}

func recallK(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, recallPrefix)
	if !ok {
		return 0, false
	}
	k, err := strconv.Atoi(rest)
	return k, err == nil
}
