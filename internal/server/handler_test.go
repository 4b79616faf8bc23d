package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sqlrecsys/server/internal/cache"
	"sqlrecsys/server/internal/errors"
	"sqlrecsys/server/internal/llm"
	"sqlrecsys/server/internal/metrics"
	"sqlrecsys/server/internal/review"
	"sqlrecsys/server/internal/reviewpb"
)

const modelAnswer = `{
  "ddl": [{"statement": "CREATE TABLE users (id INT PRIMARY KEY)"}],
  "migrations": [{"statement": "ALTER TABLE users ADD PRIMARY KEY (id)"}],
  "queries": [{"query_id": "q1", "query": "SELECT id FROM users WHERE id = 1"}],
  "warnings": []
}`

func newTestHandler(fake *llm.Fake) *Handler {
	collector := metrics.NewCollector()
	w := review.New(fake, cache.Noop{}, collector)
	return NewHandler(w, collector, 5*time.Second)
}

func testPBRequest() *reviewpb.ReviewSchemaRequest {
	// MySQL keeps the workflow out of the live-introspection path.
	return &reviewpb.ReviewSchemaRequest{
		Url: "mysql://u:p@db:3306/orders",
		Ddl: []*reviewpb.DDLStatement{
			{Statement: "CREATE TABLE users (id INT)"},
		},
		Queries: []*reviewpb.Query{
			{QueryId: "q1", Query: "SELECT * FROM users", Runquantity: 100, Executiontime: 50},
		},
	}
}

func TestReviewSchemaSuccess(t *testing.T) {
	h := newTestHandler(&llm.Fake{Responses: []string{modelAnswer}})

	resp, err := h.ReviewSchema(context.Background(), testPBRequest())
	require.NoError(t, err)

	assert.True(t, resp.GetSuccess())
	assert.Empty(t, resp.GetError())
	require.Len(t, resp.GetDdl(), 1)
	assert.Equal(t, "CREATE TABLE users (id INT PRIMARY KEY)", resp.GetDdl()[0].GetStatement())
	require.Len(t, resp.GetMigrations(), 1)
	require.Len(t, resp.GetQueries(), 1)
	assert.Equal(t, "q1", resp.GetQueries()[0].GetQueryId())
}

func TestReviewSchemaEmptyRequest(t *testing.T) {
	h := newTestHandler(&llm.Fake{})

	_, err := h.ReviewSchema(context.Background(), &reviewpb.ReviewSchemaRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReviewSchemaBlankQueryID(t *testing.T) {
	h := newTestHandler(&llm.Fake{})

	req := testPBRequest()
	req.Queries[0].QueryId = " "
	_, err := h.ReviewSchema(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReviewSchemaProviderFailure(t *testing.T) {
	h := newTestHandler(&llm.Fake{Err: errors.New(errors.ProviderUnavailable, "connection refused")})

	resp, err := h.ReviewSchema(context.Background(), testPBRequest())
	require.NoError(t, err, "workflow failures must not surface as RPC errors")

	assert.False(t, resp.GetSuccess())
	assert.Equal(t, string(errors.ProviderUnavailable), resp.GetError())
	assert.Equal(t, "model provider is unreachable", resp.GetMessage())
	// No raw provider detail leaks into the response.
	assert.NotContains(t, resp.GetMessage(), "connection refused")
}

func TestReviewSchemaMalformedModelAnswer(t *testing.T) {
	h := newTestHandler(&llm.Fake{Responses: []string{"not json at all"}})

	resp, err := h.ReviewSchema(context.Background(), testPBRequest())
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, string(errors.MalformedResponse), resp.GetError())
}
