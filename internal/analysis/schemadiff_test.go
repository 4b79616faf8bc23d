package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffSchemas(t *testing.T) {
	current := []string{
		"CREATE TABLE users (id INT, name VARCHAR(100))",
		"CREATE TABLE orders (id INT)",
	}
	proposed := []string{
		"CREATE TABLE users (id INT, name VARCHAR(100))",
		"CREATE INDEX idx_orders_id ON orders (id)",
	}

	diff := DiffSchemas(current, proposed)
	assert.Equal(t, []string{"CREATE INDEX idx_orders_id ON orders (id)"}, diff.Added)
	assert.Equal(t, []string{"CREATE TABLE orders (id INT)"}, diff.Removed)
	assert.Len(t, diff.Unchanged, 1)
	assert.Empty(t, diff.Breaking)
}

func TestDiffSchemasWhitespaceInsensitive(t *testing.T) {
	current := []string{"CREATE TABLE users (\n  id INT\n)"}
	proposed := []string{"CREATE TABLE users ( id INT )"}
	diff := DiffSchemas(current, proposed)
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestDiffSchemasBreaking(t *testing.T) {
	current := []string{"ALTER TABLE users ADD COLUMN email TEXT"}
	diff := DiffSchemas(current, nil)
	assert.Equal(t, current, diff.Removed)
	assert.Equal(t, current, diff.Breaking)

	warnings := diff.Warnings()
	assert.Len(t, warnings, 2) // removal plus breaking-change call-out
	assert.Contains(t, warnings[1], "breaking change")
}

func TestDiffSchemasIgnoresBlankStatements(t *testing.T) {
	diff := DiffSchemas([]string{"  "}, []string{""})
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestDiffReport(t *testing.T) {
	diff := DiffSchemas([]string{"DROP TABLE legacy"}, []string{"CREATE TABLE modern (id INT)"})
	report := diff.Report()
	assert.Contains(t, report, "added: 1")
	assert.Contains(t, report, "removed: 1")
	assert.Contains(t, report, "Breaking changes:")
	assert.Contains(t, report, "DROP TABLE legacy")
}
