// Package analysis implements the workload heuristics that enrich the review
// prompt: query performance scoring, table dependency extraction, and schema
// diffing of the proposed DDL against the current one.
package analysis

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// QueryMetrics describes one query's observed workload.
type QueryMetrics struct {
	QueryID       string
	Query         string
	Runquantity   int64
	Executiontime int64 // milliseconds
}

// Recommendation is a single performance finding for a query.
type Recommendation struct {
	QueryID        string
	IssueType      string
	Description    string
	Recommendation string
	Impact         string
}

const (
	slowThresholdMs     = 5000
	moderateThresholdMs = 1000
	hotRunThreshold     = 10000
)

var (
	reJoin        = regexp.MustCompile(`\b(?:INNER|LEFT|RIGHT|OUTER)?\s*JOIN\b`)
	reFuncInWhere = regexp.MustCompile(`WHERE.*\b(?:UPPER|LOWER|SUBSTRING|CONCAT)\s*\(`)
	reSubquery    = regexp.MustCompile(`SELECT.*\(\s*SELECT`)
	reAggregate   = regexp.MustCompile(`\b(?:COUNT|SUM|AVG|MAX|MIN)\s*\(.*\)`)
)

// PriorityScore ranks a query for optimization. Frequency is dampened with
// an exponent of 0.7 so very hot queries do not drown out the slow ones.
func PriorityScore(executionTimeMs, runQuantity int64) float64 {
	if executionTimeMs <= 0 || runQuantity <= 0 {
		return 0
	}
	return float64(executionTimeMs) * math.Pow(float64(runQuantity), 0.7) / 1000
}

// QueryIssues detects SQL anti-patterns in a single query.
func QueryIssues(query string) []string {
	var issues []string
	upper := strings.ToUpper(query)

	if strings.Contains(upper, "SELECT") && !strings.Contains(upper, "WHERE") && !strings.Contains(upper, "LIMIT") {
		issues = append(issues, "full_table_scan")
	}
	if len(reJoin.FindAllString(upper, -1)) >= 3 {
		issues = append(issues, "complex_joins")
	}
	if reFuncInWhere.MatchString(upper) {
		issues = append(issues, "functions_in_where")
	}
	if reSubquery.MatchString(upper) {
		issues = append(issues, "subquery_in_select")
	}
	if strings.Contains(upper, "DISTINCT") && !strings.Contains(upper, "ORDER BY") {
		issues = append(issues, "unordered_distinct")
	}
	if reAggregate.MatchString(upper) && !strings.Contains(upper, "GROUP BY") {
		issues = append(issues, "aggregation_without_grouping")
	}
	return issues
}

// Recommend derives findings for one query from its metrics and patterns.
func Recommend(m QueryMetrics) []Recommendation {
	var recs []Recommendation

	if m.Executiontime > slowThresholdMs {
		recs = append(recs, Recommendation{
			QueryID:        m.QueryID,
			IssueType:      "slow_execution",
			Description:    fmt.Sprintf("query runs for %dms, which is very slow", m.Executiontime),
			Recommendation: "create indexes for the columns in WHERE and JOIN conditions without changing the query result",
			Impact:         "high",
		})
	} else if m.Executiontime > moderateThresholdMs {
		recs = append(recs, Recommendation{
			QueryID:        m.QueryID,
			IssueType:      "moderate_execution",
			Description:    fmt.Sprintf("query runs for %dms", m.Executiontime),
			Recommendation: "add indexes on filter and join columns to speed it up without changing the result",
			Impact:         "medium",
		})
	}

	if m.Runquantity > hotRunThreshold {
		recs = append(recs, Recommendation{
			QueryID:        m.QueryID,
			IssueType:      "high_frequency",
			Description:    fmt.Sprintf("query runs %d times", m.Runquantity),
			Recommendation: "consider a materialized view with an identical result structure",
			Impact:         "high",
		})
	}

	for _, issue := range QueryIssues(m.Query) {
		switch issue {
		case "full_table_scan":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "query performs a full table scan",
				Recommendation: "create indexes on the filter columns without changing the query logic",
				Impact:         "high",
			})
		case "complex_joins":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "query contains multiple JOIN operations",
				Recommendation: "create composite indexes on the JOIN columns or partition the tables",
				Impact:         "high",
			})
		case "functions_in_where":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "query applies functions to columns in WHERE",
				Recommendation: "use expression indexes or precomputed columns for the function results",
				Impact:         "medium",
			})
		case "subquery_in_select":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "query embeds a subquery inside SELECT",
				Recommendation: "rewrite the subquery as a JOIN where the result stays identical",
				Impact:         "medium",
			})
		case "unordered_distinct":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "DISTINCT without ORDER BY",
				Recommendation: "check whether DISTINCT is needed or an index can guarantee uniqueness",
				Impact:         "low",
			})
		case "aggregation_without_grouping":
			recs = append(recs, Recommendation{
				QueryID:        m.QueryID,
				IssueType:      issue,
				Description:    "aggregate function without GROUP BY",
				Recommendation: "consider a summary table maintained incrementally for frequent aggregates",
				Impact:         "low",
			})
		}
	}

	return recs
}

// PerformanceReport renders the workload analysis as a prompt section.
// Queries appear in descending priority order.
func PerformanceReport(metrics []QueryMetrics) string {
	if len(metrics) == 0 {
		return "no query metrics available for performance analysis"
	}

	type scored struct {
		m     QueryMetrics
		score float64
	}
	ranked := make([]scored, 0, len(metrics))
	for _, m := range metrics {
		ranked = append(ranked, scored{m, PriorityScore(m.Executiontime, m.Runquantity)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var b strings.Builder
	b.WriteString("=== QUERY PERFORMANCE ===\n")
	for _, r := range ranked {
		fmt.Fprintf(&b, "%s: priority=%.2f, %dms x %d runs\n", r.m.QueryID, r.score, r.m.Executiontime, r.m.Runquantity)
		for _, rec := range Recommend(r.m) {
			fmt.Fprintf(&b, "  [%s/%s] %s -> %s\n", rec.Impact, rec.IssueType, rec.Description, rec.Recommendation)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
