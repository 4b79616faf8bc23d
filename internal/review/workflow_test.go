package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlrecsys/server/internal/cache"
	"sqlrecsys/server/internal/errors"
	"sqlrecsys/server/internal/llm"
	"sqlrecsys/server/internal/metrics"
)

// memCache is a map-backed Cache for workflow tests.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}
func (m *memCache) Set(_ context.Context, key string, value []byte) { m.data[key] = value }
func (m *memCache) Close() error                                    { return nil }

// staticInspector replaces the live database inspector in tests.
type staticInspector string

func (s staticInspector) Describe(context.Context, string) string { return string(s) }

func newTestWorkflow(fake *llm.Fake, c cache.Cache) *Workflow {
	w := New(fake, c, metrics.NewCollector())
	w.inspector = staticInspector("")
	return w
}

const goodAnswer = "```json\n" + `{
  "ddl": [{"statement": "CREATE TABLE users (id INT PRIMARY KEY, email TEXT)"}],
  "migrations": [{"statement": "ALTER TABLE users ADD PRIMARY KEY (id)"}],
  "queries": [
    {"query_id": "q1", "query": "SELECT id FROM users WHERE id = 1"},
    {"query_id": "ghost", "query": "SELECT 1"},
    {"query_id": "q2", "query": "  "}
  ],
  "warnings": ["index creation locks the table briefly"]
}` + "\n```"

func testRequest() Request {
	return Request{
		URL: "postgresql://u:p@db:5432/orders",
		DDL: []string{"CREATE TABLE users (id INT, email TEXT)"},
		Queries: []Query{
			{ID: "q1", Query: "SELECT * FROM users", Runquantity: 20000, Executiontime: 6000},
			{ID: "q2", Query: "SELECT email FROM users WHERE id = 2", Runquantity: 10, Executiontime: 5},
		},
	}
}

func TestRunHappyPath(t *testing.T) {
	fake := &llm.Fake{Responses: []string{goodAnswer}}
	w := newTestWorkflow(fake, cache.Noop{})

	result, err := w.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"CREATE TABLE users (id INT PRIMARY KEY, email TEXT)"}, result.DDL)
	assert.Equal(t, []string{"ALTER TABLE users ADD PRIMARY KEY (id)"}, result.Migrations)
	require.Len(t, result.Queries, 1)
	assert.Equal(t, "q1", result.Queries[0].QueryID)

	// Model warning plus the two dropped rewrites.
	assert.Contains(t, result.Warnings, "index creation locks the table briefly")
	assert.Contains(t, result.Warnings, `dropped rewrite for unknown query_id "ghost"`)
	assert.Contains(t, result.Warnings, `dropped empty rewrite for query_id "q2"`)

	// The prompt carries the workload analysis.
	require.Len(t, fake.Prompts, 1)
	system, user := fake.Prompts[0][0], fake.Prompts[0][1]
	assert.Contains(t, system, "senior database engineer")
	assert.Contains(t, user, "Target dialect: postgresql")
	assert.Contains(t, user, "=== QUERY PERFORMANCE ===")
	assert.Contains(t, user, "=== TABLE DEPENDENCY GRAPH ===")
	assert.Contains(t, user, "Query ID: q1")
}

func TestRunValidatesRequest(t *testing.T) {
	w := newTestWorkflow(&llm.Fake{}, cache.Noop{})

	_, err := w.Run(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, errors.InvalidRequest, errors.KindOf(err))

	_, err = w.Run(context.Background(), Request{
		Queries: []Query{{ID: "", Query: "SELECT 1"}},
	})
	require.Error(t, err)
	assert.Equal(t, errors.InvalidRequest, errors.KindOf(err))

	_, err = w.Run(context.Background(), Request{
		Queries: []Query{{ID: "q1", Query: "   "}},
	})
	require.Error(t, err)
	assert.Equal(t, errors.InvalidRequest, errors.KindOf(err))
}

func TestRunRejectsUnparseableAnswer(t *testing.T) {
	fake := &llm.Fake{Responses: []string{"sorry, I cannot help with that"}}
	w := newTestWorkflow(fake, cache.Noop{})

	_, err := w.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, errors.MalformedResponse, errors.KindOf(err))
}

func TestRunRejectsAnswerWithoutDDL(t *testing.T) {
	fake := &llm.Fake{Responses: []string{`{"ddl": [], "migrations": [], "queries": []}`}}
	w := newTestWorkflow(fake, cache.Noop{})

	_, err := w.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, errors.MalformedResponse, errors.KindOf(err))
}

func TestRunPropagatesProviderErrors(t *testing.T) {
	fake := &llm.Fake{Err: errors.New(errors.ProviderTimeout, "deadline hit")}
	w := newTestWorkflow(fake, cache.Noop{})

	_, err := w.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, errors.ProviderTimeout, errors.KindOf(err))
}

func TestRunAddsSchemaDiffWarnings(t *testing.T) {
	answer := `{"ddl": [{"statement": "CREATE TABLE users_v2 (id INT)"}],
		"migrations": [{"statement": "DROP TABLE users"}], "queries": []}`
	fake := &llm.Fake{Responses: []string{answer}}
	w := newTestWorkflow(fake, cache.Noop{})

	result, err := w.Run(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}

func TestRunServesSecondCallFromCache(t *testing.T) {
	fake := &llm.Fake{Responses: []string{goodAnswer}}
	w := newTestWorkflow(fake, newMemCache())

	req := testRequest()
	first, err := w.Run(context.Background(), req)
	require.NoError(t, err)

	second, err := w.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, fake.Prompts, 1, "second run must not reach the model")
}

func TestRunThreadIDDoesNotAffectCacheKey(t *testing.T) {
	fake := &llm.Fake{Responses: []string{goodAnswer}}
	w := newTestWorkflow(fake, newMemCache())

	req := testRequest()
	_, err := w.Run(context.Background(), req)
	require.NoError(t, err)

	req.ThreadID = "thread-42"
	_, err = w.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, fake.Prompts, 1)
}
