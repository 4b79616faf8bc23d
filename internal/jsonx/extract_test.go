package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBareObject(t *testing.T) {
	got, err := Extract(`{"ddl": []}`)
	require.NoError(t, err)
	assert.Equal(t, `{"ddl": []}`, got)
}

func TestExtractFromCodeFence(t *testing.T) {
	in := "Here is the result:\n```json\n{\"migrations\": [{\"statement\": \"CREATE INDEX\"}]}\n```\nLet me know."
	got, err := Extract(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"migrations": [{"statement": "CREATE INDEX"}]}`, got)
}

func TestExtractObjectSurroundedByProse(t *testing.T) {
	in := `The improved schema follows. {"ddl": [{"statement": "CREATE TABLE t (id INT)"}], "queries": []} Hope this helps!`
	got, err := Extract(in)
	require.NoError(t, err)
	assert.Contains(t, got, "CREATE TABLE t")
}

func TestExtractNestedBraces(t *testing.T) {
	in := `{"outer": {"inner": {"deep": 1}}}`
	got, err := Extract(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestExtractPrefersValidCandidate(t *testing.T) {
	// First balanced run is not valid JSON; the real object follows.
	in := `{broken} and then {"ok": true}`
	got, err := Extract(in)
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, got)
}

func TestExtractArray(t *testing.T) {
	in := "```\n[{\"query_id\": \"q1\", \"query\": \"SELECT 1\"}]\n```"
	got, err := Extract(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"query_id": "q1", "query": "SELECT 1"}]`, got)
}

func TestExtractNoJSON(t *testing.T) {
	_, err := Extract("I cannot produce a recommendation for this schema.")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = Extract("")
	assert.ErrorIs(t, err, ErrNoJSON)
}
