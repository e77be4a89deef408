package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/aggregate"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Retrieval Evaluation: %s ===\n\n", r.Metadata.Retriever)
	fmt.Fprintf(tw, "Queries evaluated:\t%d\n", r.Metadata.TotalQueries)
	fmt.Fprintf(tw, "Skipped at load:\t%d\n", r.Metadata.SkippedQueries)
	fmt.Fprintf(tw, "Failed retrievals:\t%d\n", r.Metadata.FailedQueries)
	fmt.Fprintf(tw, "Top-K:\t%d\n", r.Metadata.TopK)
	if lat := r.Metadata.Latency; lat != nil {
		fmt.Fprintf(tw, "Latency p50 / p95:\t%.2fms / %.2fms\n", lat.P50Ms, lat.P95Ms)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Overall\n\n")
	writeHeader(tw, "Group", r.Metadata.KValues)
	writeRow(tw, aggregate.OverallGroup, r.Overall, r.Metadata.KValues)
	fmt.Fprintln(tw)

	writeGroupTable(tw, "By query type", r, aggregate.DimensionCategory, r.ByQueryType)
	writeGroupTable(tw, "By complexity level", r, aggregate.DimensionDifficulty, r.ByComplexity)

	if len(r.GroupErrors) > 0 {
		fmt.Fprintf(tw, "Groups without evaluated queries\n\n")
		for _, ge := range r.GroupErrors {
			fmt.Fprintf(tw, "%s\t%s\t%d queries\t%s\n", ge.Dimension, ge.Group, ge.Count, ge.Error)
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

func writeGroupTable(tw *tabwriter.Writer, title string, r *Report, dimension string, groups map[string]GroupMetrics) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(tw, "%s\n\n", title)
	writeHeader(tw, "Group", r.Metadata.KValues)
	for _, label := range r.Labels(dimension) {
		writeRow(tw, label, groups[label], r.Metadata.KValues)
	}
	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, first string, kValues []int) {
	header := []string{first, "Count"}
	for _, k := range kValues {
		header = append(header, fmt.Sprintf("R@%d", k))
	}
	header = append(header, "MRR", "Success", "Avg rank", "Median rank", "Failed")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func writeRow(tw *tabwriter.Writer, label string, m GroupMetrics, kValues []int) {
	row := []string{label, fmt.Sprintf("%d", m.Count)}
	for _, k := range kValues {
		row = append(row, fmt.Sprintf("%.4f", m.Recall[RecallKey(k)]))
	}
	row = append(row,
		fmt.Sprintf("%.4f", m.MeanReciprocalRank),
		fmt.Sprintf("%.1f%%", m.SuccessRate*100),
		fmtRank(m.AverageRankWhenFound),
		fmtRank(m.MedianRankWhenFound),
		fmt.Sprintf("%d", m.FailedQueries),
	)
	fmt.Fprintln(tw, strings.Join(row, "\t"))
}

func fmtRank(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
