package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sqlrecsys/server/internal/errors"
	"sqlrecsys/server/internal/logging"
	"sqlrecsys/server/internal/metrics"
	"sqlrecsys/server/internal/review"
	"sqlrecsys/server/internal/reviewpb"
)

// Handler implements the SchemaReviewService RPC surface on top of the
// review workflow.
type Handler struct {
	reviewpb.UnimplementedSchemaReviewServiceServer

	workflow  *review.Workflow
	collector *metrics.Collector
	timeout   time.Duration
	log       *logging.Logger
}

func NewHandler(w *review.Workflow, c *metrics.Collector, timeout time.Duration) *Handler {
	return &Handler{
		workflow:  w,
		collector: c,
		timeout:   timeout,
		log:       logging.New("rpc"),
	}
}

// ReviewSchema runs one review. Malformed requests fail with InvalidArgument;
// workflow failures come back as success=false responses so the caller can
// show a reason without parsing gRPC statuses.
func (h *Handler) ReviewSchema(ctx context.Context, req *reviewpb.ReviewSchemaRequest) (*reviewpb.ReviewSchemaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	result, err := h.workflow.Run(ctx, toRequest(req))
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		kind := errors.KindOf(err)
		h.log.Errorf("review failed after %s: %v", elapsed, err)
		h.collector.RecordReview("failure")

		if kind == errors.InvalidRequest {
			return nil, status.Error(codes.InvalidArgument, errors.UserMessage(err))
		}
		return &reviewpb.ReviewSchemaResponse{
			Success: false,
			Message: errors.UserMessage(err),
			Error:   string(kind),
		}, nil
	}

	h.log.Infof("review finished in %s: %d ddl, %d migrations, %d rewrites, %d warnings",
		elapsed, len(result.DDL), len(result.Migrations), len(result.Queries), len(result.Warnings))
	h.collector.RecordReview("success")
	return toResponse(result), nil
}

func toRequest(req *reviewpb.ReviewSchemaRequest) review.Request {
	out := review.Request{
		URL:      req.GetUrl(),
		ThreadID: req.GetThreadId(),
	}
	for _, d := range req.GetDdl() {
		out.DDL = append(out.DDL, d.GetStatement())
	}
	for _, q := range req.GetQueries() {
		out.Queries = append(out.Queries, review.Query{
			ID:            q.GetQueryId(),
			Query:         q.GetQuery(),
			Runquantity:   q.GetRunquantity(),
			Executiontime: q.GetExecutiontime(),
		})
	}
	return out
}

func toResponse(result review.Result) *reviewpb.ReviewSchemaResponse {
	resp := &reviewpb.ReviewSchemaResponse{
		Success:  true,
		Message:  "schema review completed",
		Warnings: result.Warnings,
	}
	for _, s := range result.DDL {
		resp.Ddl = append(resp.Ddl, &reviewpb.DDLResult{Statement: s})
	}
	for _, s := range result.Migrations {
		resp.Migrations = append(resp.Migrations, &reviewpb.MigrationResult{Statement: s})
	}
	for _, q := range result.Queries {
		resp.Queries = append(resp.Queries, &reviewpb.QueryResult{QueryId: q.QueryID, Query: q.Query})
	}
	return resp
}
