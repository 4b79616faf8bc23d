package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTables(t *testing.T) {
	q := "SELECT * FROM orders o JOIN users u ON o.user_id = u.id LEFT JOIN public.items i ON i.order_id = o.id"
	tables := ExtractTables(q)
	assert.ElementsMatch(t, []string{"orders", "users", "public.items"}, tables)
}

func TestExtractTablesDeduplicates(t *testing.T) {
	q := "SELECT * FROM users JOIN users ON 1=1"
	assert.Equal(t, []string{"users"}, ExtractTables(q))
}

func TestLineageReport(t *testing.T) {
	report := LineageReport([]string{
		"SELECT * FROM orders JOIN users ON orders.user_id = users.id",
		"SELECT * FROM invoices",
	})
	assert.Contains(t, report, "TABLE DEPENDENCY GRAPH")
	assert.Contains(t, report, "orders -> users")
	assert.Contains(t, report, "invoices -> no dependencies")
	assert.Contains(t, report, "Critical tables:")
}

func TestLineageReportEmpty(t *testing.T) {
	assert.Contains(t, LineageReport(nil), "no queries")
}
