package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AaronStockburger/job-worker/internal/application/usecase"
	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/domain/service"
	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/config"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/profile"
	"github.com/AaronStockburger/job-worker/pkg/auth"
	pkgkafka "github.com/AaronStockburger/job-worker/pkg/kafka"
	"github.com/AaronStockburger/job-worker/pkg/observability"
	"github.com/AaronStockburger/job-worker/pkg/postgres"
)

func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	return observability.InitLogger(observability.LogConfig{
		Output:  out,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
	})
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return postgres.NewPool(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
}

// newResolver builds the configured profile source. The returned pool is set only
// for the postgres source and must be closed by the caller.
func newResolver(ctx context.Context, cfg *config.Config) (port.ProfileResolver, *pgxpool.Pool, error) {
	switch cfg.Profile.Source {
	case config.ProfileSourceHTTP:
		return profile.NewHTTPResolver(cfg.Profile.BaseURL, cfg.Profile.Timeout), nil, nil
	case config.ProfileSourceFile:
		return profile.NewFileResolver(cfg.Profile.File), nil, nil
	case config.ProfileSourcePostgres:
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return profile.NewPostgresResolver(pool), pool, nil
	default:
		return nil, nil, fmt.Errorf("unknown profile source %q", cfg.Profile.Source)
	}
}

func newUseCase(cfg *config.Config, resolver port.ProfileResolver) (*usecase.AnalyzeSegmentRisk, error) {
	mode, err := valueobject.AnalysisModeFromString(cfg.Analysis.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("analysis.default_mode: %w", err)
	}

	return usecase.NewAnalyzeSegmentRisk(
		resolver,
		service.NewRiskAggregator(service.NewSegmentScorer()),
		usecase.AnalyzeSegmentRiskConfig{
			DefaultMode: mode,
			Locale:      valueobject.MatchLocale(cfg.Recommendation.Locale),
			SegmentKeys: cfg.Analysis.SegmentKeys,
		},
	)
}

func kafkaConfig(cfg *config.Config) pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
		MaxWait:       cfg.Worker.PollInterval,
		TLS:           cfg.Kafka.TLS,
		SASLEnabled:   cfg.Kafka.SASLEnabled,
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
	}
}

// newVerifier returns nil when gRPC auth is not configured.
func newVerifier(cfg *config.Config) (*auth.Verifier, error) {
	vc := auth.VerifierConfig{
		Secret: cfg.GRPC.Auth.Secret,
		Issuer: cfg.GRPC.Auth.Issuer,
	}
	if cfg.GRPC.Auth.PublicKeyFile != "" {
		pem, err := auth.LoadKeyFromFile(cfg.GRPC.Auth.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		vc.PublicKeyPEM = pem
	}
	if !vc.Enabled() {
		return nil, nil
	}
	return auth.NewVerifier(vc)
}
