// Package server hosts the SchemaReviewService gRPC endpoint and owns the
// process lifecycle: listener, health service, metrics listener and graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"sqlrecsys/server/internal/cache"
	"sqlrecsys/server/internal/config"
	"sqlrecsys/server/internal/llm"
	"sqlrecsys/server/internal/logging"
	"sqlrecsys/server/internal/metrics"
	"sqlrecsys/server/internal/review"
	"sqlrecsys/server/internal/reviewpb"
)

// Server wires the workflow into a gRPC listener.
type Server struct {
	cfg       config.Config
	workflow  *review.Workflow
	collector *metrics.Collector
	cache     cache.Cache
	log       *logging.Logger
}

// New assembles the server from a validated config. The model client and the
// cache connection are created here so a bad credential or cache address
// fails before the listener opens.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	client, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var resultCache cache.Cache = cache.Noop{}
	if cfg.CacheAddr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect result cache at %s: %w", cfg.CacheAddr, err)
		}
		resultCache = redisCache
	}

	collector := metrics.NewCollector()
	return &Server{
		cfg:       cfg,
		workflow:  review.New(client, resultCache, collector),
		collector: collector,
		cache:     resultCache,
		log:       logging.New("server"),
	}, nil
}

// Run serves until ctx is canceled or SIGINT/SIGTERM arrives, then drains
// in-flight reviews for the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	defer s.cache.Close()

	addr := fmt.Sprintf(":%d", s.cfg.GRPCPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()
	reviewpb.RegisterSchemaReviewServiceServer(grpcServer, NewHandler(s.workflow, s.collector, s.cfg.ReviewTimeout))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	if s.cfg.MetricsPort > 0 {
		go func() {
			if err := s.collector.Serve(ctx, s.cfg.MetricsPort); err != nil {
				s.log.Errorf("metrics listener: %v", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("serving %s model on %s", s.workflowProvider(), addr)
		errCh <- grpcServer.Serve(ln)
	}()

	select {
	case sig := <-sigCh:
		s.log.Infof("received %s, shutting down", sig)
	case <-ctx.Done():
		s.log.Infof("context canceled, shutting down")
	case err := <-errCh:
		return err
	}

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return s.stop(grpcServer)
}

// stop drains in-flight RPCs, forcing the stop once the grace period runs out.
func (s *Server) stop(grpcServer *grpc.Server) error {
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.log.Infof("drained cleanly")
	case <-time.After(s.cfg.GracePeriod):
		s.log.Warnf("grace period expired, forcing stop")
		grpcServer.Stop()
	}
	return nil
}

func (s *Server) workflowProvider() string {
	return fmt.Sprintf("%s (%s)", s.cfg.ModelType, s.cfg.SelectedModelName())
}
