package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronStockburger/job-worker/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "risk-analysis", cfg.Worker.TaskType)
	assert.Equal(t, 60*time.Second, cfg.Worker.JobTimeout)
	assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 1, cfg.Worker.MaxJobsActive)
	assert.Equal(t, config.ProfileSourceHTTP, cfg.Profile.Source)
	assert.Equal(t, "http://localhost:3000", cfg.Profile.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Profile.Timeout)
	assert.Equal(t, []string{"A", "B", "C", "D"}, cfg.Analysis.SegmentKeys)
	assert.Equal(t, "standard", cfg.Analysis.DefaultMode)
	assert.Equal(t, "en", cfg.Recommendation.Locale)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "risk-analysis.jobs", cfg.Kafka.JobsTopic)
	assert.Equal(t, "risk-analysis.job-results", cfg.Kafka.ResultsTopic)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RISKWORKER_WORKER_JOB_TIMEOUT", "90s")
	t.Setenv("RISKWORKER_PROFILE_BASE_URL", "http://profiles:3000")
	t.Setenv("RISKWORKER_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("RISKWORKER_RECOMMENDATION_LOCALE", "de")

	cfg, err := config.Load(viper.New(), "")

	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Worker.JobTimeout)
	assert.Equal(t, "http://profiles:3000", cfg.Profile.BaseURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "de", cfg.Recommendation.Locale)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riskworker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
worker:
  task_type: grid-risk
profile:
  source: file
  file: /etc/riskworker/profiles.yaml
analysis:
  segment_keys: [N1, N2]
  default_mode: extended
`), 0o600))

	cfg, err := config.Load(viper.New(), path)

	require.NoError(t, err)
	assert.Equal(t, "grid-risk", cfg.Worker.TaskType)
	assert.Equal(t, config.ProfileSourceFile, cfg.Profile.Source)
	assert.Equal(t, "/etc/riskworker/profiles.yaml", cfg.Profile.File)
	assert.Equal(t, []string{"N1", "N2"}, cfg.Analysis.SegmentKeys)
	assert.Equal(t, "extended", cfg.Analysis.DefaultMode)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *config.Config {
		t.Helper()
		cfg, err := config.Load(viper.New(), "")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"more than one active job", func(c *config.Config) { c.Worker.MaxJobsActive = 4 }, "max_jobs_active must be 1"},
		{"zero job timeout", func(c *config.Config) { c.Worker.JobTimeout = 0 }, "job_timeout"},
		{"zero poll interval", func(c *config.Config) { c.Worker.PollInterval = 0 }, "poll_interval"},
		{"empty task type", func(c *config.Config) { c.Worker.TaskType = "" }, "task_type"},
		{"unknown profile source", func(c *config.Config) { c.Profile.Source = "s3" }, "profile.source"},
		{"file source without file", func(c *config.Config) { c.Profile.Source = "file"; c.Profile.File = "" }, "profile.file"},
		{"unknown default mode", func(c *config.Config) { c.Analysis.DefaultMode = "deep" }, "default_mode"},
		{"no segment keys", func(c *config.Config) { c.Analysis.SegmentKeys = nil }, "segment_keys"},
		{"duplicate segment key", func(c *config.Config) { c.Analysis.SegmentKeys = []string{"A", "A"} }, "twice"},
		{"tls key without cert", func(c *config.Config) { c.GRPC.TLSKey = "key.pem" }, "tls_cert"},
		{"both auth keys", func(c *config.Config) { c.GRPC.Auth.Secret = "s"; c.GRPC.Auth.PublicKeyFile = "pub.pem" }, "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
