// Package review runs the schema review workflow: it enriches the request
// with workload analysis, asks the configured model for an improved schema,
// and validates the answer before it goes back to the caller.
package review

// Query is one workload query with its observed metrics.
type Query struct {
	ID            string `json:"query_id"`
	Query         string `json:"query"`
	Runquantity   int64  `json:"runquantity"`
	Executiontime int64  `json:"executiontime"`
}

// Request is a schema review request.
type Request struct {
	URL      string
	DDL      []string
	Queries  []Query
	ThreadID string
}

// RewrittenQuery pairs a rewritten query with the id it replaces.
type RewrittenQuery struct {
	QueryID string `json:"query_id"`
	Query   string `json:"query"`
}

// Result is a validated review outcome. It serializes to JSON for the
// result cache.
type Result struct {
	DDL        []string         `json:"ddl"`
	Migrations []string         `json:"migrations"`
	Queries    []RewrittenQuery `json:"queries"`
	Warnings   []string         `json:"warnings,omitempty"`
}
