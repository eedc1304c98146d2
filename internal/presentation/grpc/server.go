package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/AaronStockburger/job-worker/pkg/auth"
	"github.com/AaronStockburger/job-worker/pkg/tlsutil"
)

// HealthServiceName is the service name reported by the gRPC health service.
const HealthServiceName = "gridrisk.v1.RiskAnalysisService"

// ServerConfig configures the gRPC server.
type ServerConfig struct {
	Address string
	// TLSCert and TLSKey enable TLS when both are set. ClientCA additionally
	// requires client certificates.
	TLSCert    string
	TLSKey     string
	ClientCA   string
	Reflection bool
	// Verifier, when set, requires a bearer token with the analyze scope on
	// every call except health checks.
	Verifier *auth.Verifier
}

// Server wraps the gRPC server with the risk analysis handler.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *slog.Logger
	address    string
}

// NewServer creates a new gRPC server for the risk analysis API.
func NewServer(handler *RiskAnalysisHandler, cfg ServerConfig, logger *slog.Logger) (*Server, error) {
	interceptors := []grpc.UnaryServerInterceptor{loggingInterceptor(logger)}
	if cfg.Verifier != nil {
		interceptors = append(interceptors, auth.UnaryAuthInterceptor(cfg.Verifier, auth.ScopeAnalyze, []string{
			healthpb.Health_Check_FullMethodName,
		}))
		logger.Info("gRPC bearer token auth enabled")
	}

	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(interceptors...),
	}

	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		creds, err := tlsutil.ServerTLSConfig(cfg.TLSCert, cfg.TLSKey, cfg.ClientCA)
		if err != nil {
			return nil, fmt.Errorf("loading gRPC TLS credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", cfg.TLSCert, "mutual", cfg.ClientCA != "")
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	grpcServer := grpc.NewServer(serverOpts...)

	// Register health check service.
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(HealthServiceName, healthpb.HealthCheckResponse_SERVING)

	RegisterRiskAnalysisServiceServer(grpcServer, handler)

	if cfg.Reflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
		address:    cfg.Address,
	}, nil
}

// Start begins listening and serving gRPC requests.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(listener)
}

// Serve serves gRPC requests on an existing listener.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC server starting",
		slog.String("address", listener.Addr().String()),
	)
	return s.grpcServer.Serve(listener)
}

// Stop marks the service as not serving and gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("gRPC call",
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
