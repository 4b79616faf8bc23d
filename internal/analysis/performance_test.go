package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityScore(t *testing.T) {
	assert.Zero(t, PriorityScore(0, 100))
	assert.Zero(t, PriorityScore(100, 0))
	assert.Zero(t, PriorityScore(-5, -5))

	// 1000ms * 1000^0.7 / 1000 = 1000^0.7
	score := PriorityScore(1000, 1000)
	assert.InDelta(t, 125.89, score, 0.01)

	// More runs must rank higher for the same latency.
	assert.Greater(t, PriorityScore(500, 10000), PriorityScore(500, 100))
}

func TestQueryIssuesFullTableScan(t *testing.T) {
	issues := QueryIssues("SELECT * FROM users")
	assert.Contains(t, issues, "full_table_scan")

	issues = QueryIssues("SELECT * FROM users WHERE id = 1")
	assert.NotContains(t, issues, "full_table_scan")

	issues = QueryIssues("SELECT * FROM users LIMIT 10")
	assert.NotContains(t, issues, "full_table_scan")
}

func TestQueryIssuesComplexJoins(t *testing.T) {
	q := `SELECT * FROM a
		JOIN b ON a.id = b.a_id
		LEFT JOIN c ON b.id = c.b_id
		INNER JOIN d ON c.id = d.c_id
		WHERE a.x = 1`
	assert.Contains(t, QueryIssues(q), "complex_joins")

	q2 := "SELECT * FROM a JOIN b ON a.id = b.a_id WHERE a.x = 1"
	assert.NotContains(t, QueryIssues(q2), "complex_joins")
}

func TestQueryIssuesFunctionsInWhere(t *testing.T) {
	q := "SELECT id FROM users WHERE UPPER(name) = 'BOB'"
	assert.Contains(t, QueryIssues(q), "functions_in_where")
}

func TestQueryIssuesSubqueryInSelect(t *testing.T) {
	q := "SELECT id, (SELECT count(*) FROM orders o WHERE o.user_id = u.id) FROM users u WHERE u.active"
	assert.Contains(t, QueryIssues(q), "subquery_in_select")
}

func TestRecommendThresholds(t *testing.T) {
	slow := Recommend(QueryMetrics{QueryID: "q1", Query: "SELECT id FROM t WHERE id = 1", Executiontime: 6000, Runquantity: 10})
	found := false
	for _, r := range slow {
		if r.IssueType == "slow_execution" {
			found = true
			assert.Equal(t, "high", r.Impact)
		}
	}
	assert.True(t, found, "expected slow_execution finding")

	moderate := Recommend(QueryMetrics{QueryID: "q2", Query: "SELECT id FROM t WHERE id = 1", Executiontime: 2000, Runquantity: 10})
	for _, r := range moderate {
		assert.NotEqual(t, "slow_execution", r.IssueType)
	}

	hot := Recommend(QueryMetrics{QueryID: "q3", Query: "SELECT id FROM t WHERE id = 1", Executiontime: 50, Runquantity: 50000})
	found = false
	for _, r := range hot {
		if r.IssueType == "high_frequency" {
			found = true
		}
	}
	assert.True(t, found, "expected high_frequency finding")
}

func TestPerformanceReportOrdering(t *testing.T) {
	report := PerformanceReport([]QueryMetrics{
		{QueryID: "cheap", Query: "SELECT 1", Executiontime: 10, Runquantity: 10},
		{QueryID: "expensive", Query: "SELECT * FROM t", Executiontime: 8000, Runquantity: 5000},
	})
	assert.Less(t, strings.Index(report, "expensive"), strings.Index(report, "cheap"))
	assert.Contains(t, report, "QUERY PERFORMANCE")
}

func TestPerformanceReportEmpty(t *testing.T) {
	report := PerformanceReport(nil)
	assert.Contains(t, report, "no query metrics")
}
