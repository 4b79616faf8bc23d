package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sqlrecsys/server/internal/analysis"
	"sqlrecsys/server/internal/cache"
	"sqlrecsys/server/internal/dsn"
	"sqlrecsys/server/internal/errors"
	"sqlrecsys/server/internal/inspect"
	"sqlrecsys/server/internal/jsonx"
	"sqlrecsys/server/internal/llm"
	"sqlrecsys/server/internal/logging"
	"sqlrecsys/server/internal/metrics"
	"sqlrecsys/server/internal/prompt"
)

// Inspector summarizes the live database behind a connection URL.
type Inspector interface {
	Describe(ctx context.Context, rawDSN string) string
}

// Workflow owns the stages of a schema review. One instance serves all
// requests; every field is safe for concurrent use.
type Workflow struct {
	client    llm.Client
	prompts   *prompt.Store
	cache     cache.Cache
	metrics   *metrics.Collector
	inspector Inspector
	log       *logging.Logger
}

// New builds a workflow around the given model client. cache and collector
// must be non-nil; pass cache.Noop and a fresh collector to disable them.
func New(client llm.Client, c cache.Cache, m *metrics.Collector) *Workflow {
	return &Workflow{
		client:    client,
		prompts:   prompt.NewStore(),
		cache:     c,
		metrics:   m,
		inspector: inspect.New(),
		log:       logging.New("review"),
	}
}

// fingerprint is the cache identity of a request. Thread id is deliberately
// excluded so retries on a new thread still hit the cache.
type fingerprint struct {
	URL     string   `json:"url"`
	DDL     []string `json:"ddl"`
	Queries []Query  `json:"queries"`
}

// modelResponse is the JSON shape the model is instructed to produce.
type modelResponse struct {
	DDL []struct {
		Statement string `json:"statement"`
	} `json:"ddl"`
	Migrations []struct {
		Statement string `json:"statement"`
	} `json:"migrations"`
	Queries  []RewrittenQuery `json:"queries"`
	Warnings []string         `json:"warnings"`
}

// Run executes the full review. On error the result is empty and the error
// carries a kind the RPC layer can report.
func (w *Workflow) Run(ctx context.Context, req Request) (Result, error) {
	if err := validate(req); err != nil {
		w.metrics.RecordError(string(errors.KindOf(err)))
		return Result{}, err
	}

	key := cache.Key(fingerprint{URL: req.URL, DDL: req.DDL, Queries: req.Queries})
	if data, ok := w.cache.Get(ctx, key); ok {
		var cached Result
		if err := json.Unmarshal(data, &cached); err == nil {
			w.metrics.RecordCacheEvent("hit")
			w.log.Infof("served review from cache")
			return cached, nil
		}
		w.log.Warnf("dropping undecodable cache entry %s", key)
	}
	w.metrics.RecordCacheEvent("miss")

	liveState := w.timed("inspect_database", func() string {
		return w.inspector.Describe(ctx, req.URL)
	})
	perfReport := w.timed("analyze_performance", func() string {
		return analysis.PerformanceReport(queryMetrics(req.Queries))
	})
	lineageReport := w.timed("analyze_lineage", func() string {
		return analysis.LineageReport(queryTexts(req.Queries))
	})

	system, user, err := w.composePrompt(req, perfReport, lineageReport, liveState)
	if err != nil {
		w.metrics.RecordError(string(errors.KindOf(err)))
		return Result{}, err
	}

	answer, err := w.callModel(ctx, system, user)
	if err != nil {
		w.metrics.RecordError(string(errors.KindOf(err)))
		return Result{}, err
	}

	result, err := w.parseResponse(answer, req)
	if err != nil {
		w.metrics.RecordError(string(errors.KindOf(err)))
		return Result{}, err
	}

	start := time.Now()
	diff := analysis.DiffSchemas(req.DDL, result.DDL)
	result.Warnings = append(result.Warnings, diff.Warnings()...)
	w.metrics.RecordStage("validate_changes", time.Since(start))

	if data, err := json.Marshal(result); err == nil {
		w.cache.Set(ctx, key, data)
	}
	return result, nil
}

func validate(req Request) error {
	if len(req.DDL) == 0 && len(req.Queries) == 0 {
		return errors.New(errors.InvalidRequest, "request needs at least one DDL statement or query")
	}
	for i, q := range req.Queries {
		if strings.TrimSpace(q.ID) == "" {
			return errors.New(errors.InvalidRequest, fmt.Sprintf("query #%d has an empty query_id", i))
		}
		if strings.TrimSpace(q.Query) == "" {
			return errors.New(errors.InvalidRequest, fmt.Sprintf("query %q has empty text", q.ID))
		}
	}
	return nil
}

func (w *Workflow) composePrompt(req Request, sections ...string) (system, user string, err error) {
	start := time.Now()
	defer func() { w.metrics.RecordStage("compose_prompt", time.Since(start)) }()

	system, err = w.prompts.Load("system_reviewer")
	if err != nil {
		return "", "", errors.Wrap(errors.ConfigInvalid, "load system prompt", err)
	}

	dialect := dsn.DialectPostgreSQL
	if req.URL != "" {
		if info, perr := dsn.Parse(req.URL); perr == nil {
			dialect = info.Dialect
		}
	}

	var queries strings.Builder
	for _, q := range req.Queries {
		fmt.Fprintf(&queries, "Query ID: %s\nQuery: %s\nRuns: %d\nAvg time: %d ms\n\n",
			q.ID, q.Query, q.Runquantity, q.Executiontime)
	}

	var analysisText []string
	for _, s := range sections {
		if s != "" {
			analysisText = append(analysisText, s)
		}
	}
	if len(analysisText) == 0 {
		analysisText = []string{"(no workload analysis available)"}
	}

	user, err = w.prompts.Format("schema_analysis", map[string]string{
		"Dialect":  string(dialect),
		"DDL":      strings.Join(req.DDL, "\n\n"),
		"Queries":  strings.TrimSpace(queries.String()),
		"Analysis": strings.Join(analysisText, "\n\n"),
	})
	if err != nil {
		return "", "", errors.Wrap(errors.ConfigInvalid, "render analysis prompt", err)
	}
	return system, user, nil
}

func (w *Workflow) callModel(ctx context.Context, system, user string) (string, error) {
	start := time.Now()
	answer, err := w.client.Complete(ctx, system, user)
	elapsed := time.Since(start)
	w.metrics.RecordStage("call_llm", elapsed)

	if err != nil {
		w.metrics.RecordProviderCall(w.client.Name(), "error", elapsed)
		return "", err
	}
	w.metrics.RecordProviderCall(w.client.Name(), "ok", elapsed)
	w.log.Debugf("model answered in %s (%d bytes)", elapsed.Round(time.Millisecond), len(answer))
	return answer, nil
}

// parseResponse extracts and validates the model's JSON answer. Rewrites for
// unknown query ids and empty rewrites are dropped with a warning instead of
// failing the review.
func (w *Workflow) parseResponse(answer string, req Request) (Result, error) {
	start := time.Now()
	defer func() { w.metrics.RecordStage("parse_response", time.Since(start)) }()

	raw, err := jsonx.Extract(answer)
	if err != nil {
		return Result{}, errors.Wrap(errors.MalformedResponse, "no JSON object in model answer", err)
	}

	var parsed modelResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Result{}, errors.Wrap(errors.MalformedResponse, "decode model answer", err)
	}
	if len(parsed.DDL) == 0 {
		return Result{}, errors.New(errors.MalformedResponse, "model answer contains no DDL")
	}

	known := make(map[string]bool, len(req.Queries))
	for _, q := range req.Queries {
		known[q.ID] = true
	}

	result := Result{Warnings: parsed.Warnings}
	for _, d := range parsed.DDL {
		if s := strings.TrimSpace(d.Statement); s != "" {
			result.DDL = append(result.DDL, s)
		}
	}
	for _, m := range parsed.Migrations {
		if s := strings.TrimSpace(m.Statement); s != "" {
			result.Migrations = append(result.Migrations, s)
		}
	}
	for _, q := range parsed.Queries {
		switch {
		case !known[q.QueryID]:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dropped rewrite for unknown query_id %q", q.QueryID))
		case strings.TrimSpace(q.Query) == "":
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dropped empty rewrite for query_id %q", q.QueryID))
		default:
			result.Queries = append(result.Queries, q)
		}
	}
	if len(result.DDL) == 0 {
		return Result{}, errors.New(errors.MalformedResponse, "model answer contains only blank DDL")
	}
	return result, nil
}

func (w *Workflow) timed(stage string, fn func() string) string {
	start := time.Now()
	out := fn()
	w.metrics.RecordStage(stage, time.Since(start))
	return out
}

func queryMetrics(queries []Query) []analysis.QueryMetrics {
	out := make([]analysis.QueryMetrics, 0, len(queries))
	for _, q := range queries {
		out = append(out, analysis.QueryMetrics{
			QueryID:       q.ID,
			Query:         q.Query,
			Runquantity:   q.Runquantity,
			Executiontime: q.Executiontime,
		})
	}
	return out
}

func queryTexts(queries []Query) []string {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		out = append(out, q.Query)
	}
	return out
}
