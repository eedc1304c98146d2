package kafka

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestNewConsumerConfiguresReader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewConsumer(Config{
		Brokers:       []string{"localhost:9092"},
		ConsumerGroup: "risk-analysis-worker",
		MaxWait:       2 * time.Second,
	}, "risk-analysis.jobs", nil, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	cfg := c.reader.Config()
	if cfg.Topic != "risk-analysis.jobs" {
		t.Errorf("expected topic risk-analysis.jobs, got %s", cfg.Topic)
	}
	if cfg.GroupID != "risk-analysis-worker" {
		t.Errorf("expected group risk-analysis-worker, got %s", cfg.GroupID)
	}
	if cfg.MaxWait != 2*time.Second {
		t.Errorf("expected max wait 2s, got %s", cfg.MaxWait)
	}
}

func TestNewConsumerUnknownSASL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewConsumer(Config{
		Brokers:       []string{"localhost:9092"},
		ConsumerGroup: "g",
		SASLEnabled:   true,
		SASLMechanism: "OAUTHBEARER",
	}, "t", nil, logger)
	if err == nil {
		t.Fatal("expected error for unsupported mechanism")
	}
}
