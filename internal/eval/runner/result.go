package runner

import (
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/aggregate"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/queryset"
	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
	"github.com/google/uuid"
)

// RunResult is everything one evaluation pass produced. Results follow the
// query set order regardless of how many workers scored them.
type RunResult struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Retriever string
	Source    string
	TopK      int
	KValues   []int
	Results   []scorer.Result
	Skipped   []queryset.SkippedRecord
	Summary   *aggregate.Summary
	Latency   LatencyStats
}

func (rr *RunResult) FailedCount() int {
	var n int
	for i := range rr.Results {
		if rr.Results[i].Failed() {
			n++
		}
	}
	return n
}
