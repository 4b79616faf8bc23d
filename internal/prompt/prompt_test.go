package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSystemReviewer(t *testing.T) {
	s := NewStore()
	text, err := s.Load("system_reviewer")
	require.NoError(t, err)
	assert.Contains(t, text, "JSON object")
	assert.Contains(t, text, `"migrations"`)
}

func TestLoadUnknownTemplate(t *testing.T) {
	s := NewStore()
	_, err := s.Load("nope")
	assert.Error(t, err)
}

func TestFormatSchemaAnalysis(t *testing.T) {
	s := NewStore()
	out, err := s.Format("schema_analysis", map[string]string{
		"Dialect":  "postgresql",
		"DDL":      "CREATE TABLE users (id INT)",
		"Queries":  "Query ID: q1\nQuery: SELECT * FROM users",
		"Analysis": "=== QUERY PERFORMANCE ===",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Target dialect: postgresql")
	assert.Contains(t, out, "CREATE TABLE users (id INT)")
	assert.Contains(t, out, "SELECT * FROM users")
}

func TestFormatCachesTemplate(t *testing.T) {
	s := NewStore()
	_, err := s.Format("schema_analysis", map[string]string{"Dialect": "a", "DDL": "b", "Queries": "c", "Analysis": "d"})
	require.NoError(t, err)
	s.mu.RLock()
	_, cached := s.cache["schema_analysis"]
	s.mu.RUnlock()
	assert.True(t, cached)
}
