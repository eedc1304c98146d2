package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AaronStockburger/job-worker/internal/infrastructure/config"
	infrakafka "github.com/AaronStockburger/job-worker/internal/infrastructure/kafka"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/profile"
	grpcpresentation "github.com/AaronStockburger/job-worker/internal/presentation/grpc"
	"github.com/AaronStockburger/job-worker/internal/presentation/rest"
	"github.com/AaronStockburger/job-worker/internal/presentation/worker"
	pkgkafka "github.com/AaronStockburger/job-worker/pkg/kafka"
	"github.com/AaronStockburger/job-worker/pkg/observability"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the job worker, the gRPC API and the health/metrics listener",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("worker-name", "", "name reported with every job result (default: random)")
	cmd.Flags().String("grpc-addr", ":8090", "gRPC listen address")
	cmd.Flags().String("http-addr", ":9090", "health and metrics listen address")
	_ = opts.v.BindPFlag("worker.name", cmd.Flags().Lookup("worker-name"))
	_ = opts.v.BindPFlag("grpc.addr", cmd.Flags().Lookup("grpc-addr"))
	_ = opts.v.BindPFlag("http.addr", cmd.Flags().Lookup("http-addr"))

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg, os.Stdout)

	workerName := cfg.Worker.Name
	if workerName == "" {
		workerName = serviceName + "-" + uuid.NewString()
	}

	logger.Info("starting riskworker",
		"worker_name", workerName,
		"task_type", cfg.Worker.TaskType,
		"profile_source", cfg.Profile.Source,
		"jobs_topic", cfg.Kafka.JobsTopic,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.WithoutCancel(ctx)) }()
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
		SetGlobal:   true,
	})
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.WithoutCancel(ctx)) }()

	// Wire adapters and use case.
	resolver, pool, err := newResolver(ctx, cfg)
	if err != nil {
		return fmt.Errorf("creating profile resolver: %w", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	analyze, err := newUseCase(cfg, resolver)
	if err != nil {
		return err
	}

	kcfg := kafkaConfig(cfg)
	producer, err := pkgkafka.NewProducer(kcfg)
	if err != nil {
		return fmt.Errorf("creating result producer: %w", err)
	}
	defer producer.Close()

	reporter := infrakafka.NewJobReporter(producer, cfg.Kafka.ResultsTopic, workerName)
	jobHandler, err := worker.NewJobHandler(
		analyze,
		reporter,
		meterProvider.Meter("github.com/AaronStockburger/job-worker/internal/presentation/worker"),
		cfg.Worker.JobTimeout,
		logger,
	)
	if err != nil {
		return err
	}

	consumer, err := pkgkafka.NewConsumer(
		kcfg,
		cfg.Kafka.JobsTopic,
		infrakafka.NewJobDispatcher(cfg.Worker.TaskType, jobHandler, logger),
		logger,
	)
	if err != nil {
		return fmt.Errorf("creating job consumer: %w", err)
	}
	defer consumer.Close()

	// HTTP server (health checks and metrics).
	checks := map[string]rest.ReadinessCheck{}
	if pool != nil {
		checks["postgres"] = func(ctx context.Context) error {
			return postgres.TableReady(ctx, pool, profile.ProfileTable)
		}
	}
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, checks).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// gRPC server.
	var grpcServer *grpcpresentation.Server
	if cfg.GRPC.Enabled {
		verifier, err := newVerifier(cfg)
		if err != nil {
			return err
		}
		grpcServer, err = grpcpresentation.NewServer(
			grpcpresentation.NewRiskAnalysisHandler(analyze, logger),
			grpcpresentation.ServerConfig{
				Address:    cfg.GRPC.Addr,
				TLSCert:    cfg.GRPC.TLSCert,
				TLSKey:     cfg.GRPC.TLSKey,
				ClientCA:   cfg.GRPC.ClientCA,
				Reflection: cfg.GRPC.Reflection,
				Verifier:   verifier,
			},
			logger,
		)
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.Start(gctx)
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", "address", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			if err := grpcServer.Start(); err != nil {
				return fmt.Errorf("gRPC server error: %w", err)
			}
			return nil
		})
	}

	// Graceful shutdown once the signal arrives or any component fails.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down riskworker")

		if grpcServer != nil {
			grpcServer.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("riskworker stopped with error", "error", err)
		return err
	}

	logger.Info("riskworker stopped")
	return nil
}
