package scorer

import (
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
)

// Outcome distinguishes a successful hit, a successful miss and a retrieval failure.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

// Result is the immutable per-query evaluation record.
type Result struct {
	Query          queryset.Query
	Outcome        Outcome
	RetrievedIDs   []int
	Scores         []float64
	FoundRanks     map[int]int
	BestRank       int
	Recall         map[int]float64
	ReciprocalRank float64
	Latency        time.Duration
	Error          error
}

func (r *Result) FoundAny() bool { return r.Outcome == OutcomeFound }

func (r *Result) Failed() bool { return r.Outcome == OutcomeFailed }

// Rank returns the best rank and whether any expected document was retrieved.
func (r *Result) Rank() (int, bool) {
	if r.Outcome != OutcomeFound {
		return 0, false
	}
	return r.BestRank, true
}
