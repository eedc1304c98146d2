package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronStockburger/job-worker/internal/domain/port"
	"github.com/AaronStockburger/job-worker/internal/infrastructure/kafka"
	pkgkafka "github.com/AaronStockburger/job-worker/pkg/kafka"
)

// --- Fakes ---

type fakePublisher struct {
	topic    string
	messages []pkgkafka.Message
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.topic = topic
	f.messages = append(f.messages, messages...)
	return nil
}

type recordingProcessor struct {
	jobs []port.Job
	err  error
}

func (p *recordingProcessor) Process(_ context.Context, job port.Job) error {
	p.jobs = append(p.jobs, job)
	return p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Tests ---

func TestDecodeJob(t *testing.T) {
	t.Run("full message", func(t *testing.T) {
		job, err := kafka.DecodeJob([]byte(`{
			"key": "2251799813685249",
			"type": "risk-analysis",
			"processInstanceKey": "2251799813685100",
			"bpmnProcessId": "grid-maintenance",
			"elementId": "analyse-risk",
			"retries": 3,
			"deadline": "2026-10-14T12:00:00Z",
			"variables": {"segmentA_weather": "bad", "segmentA_incidents": 2}
		}`))

		require.NoError(t, err)
		assert.Equal(t, "2251799813685249", job.Key)
		assert.Equal(t, "risk-analysis", job.Type)
		assert.Equal(t, "grid-maintenance", job.BPMNProcessID)
		assert.Equal(t, 3, job.Retries)
		assert.False(t, job.Deadline.IsZero())
		assert.Equal(t, "bad", job.Variables["segmentA_weather"])
		assert.Equal(t, 2.0, job.Variables["segmentA_incidents"])
	})

	t.Run("missing variables become an empty map", func(t *testing.T) {
		job, err := kafka.DecodeJob([]byte(`{"key": "1", "type": "risk-analysis"}`))
		require.NoError(t, err)
		assert.NotNil(t, job.Variables)
		assert.True(t, job.Deadline.IsZero())
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := kafka.DecodeJob([]byte(`{not json`))
		require.Error(t, err)
	})

	t.Run("rejects a message without key", func(t *testing.T) {
		_, err := kafka.DecodeJob([]byte(`{"type": "risk-analysis"}`))
		require.Error(t, err)
	})
}

func TestJobDispatcher(t *testing.T) {
	t.Run("hands matching jobs to the processor", func(t *testing.T) {
		processor := &recordingProcessor{}
		handler := kafka.NewJobDispatcher("risk-analysis", processor, discardLogger())

		err := handler(context.Background(), pkgkafka.Message{Value: []byte(`{"key":"7","type":"risk-analysis"}`)})

		require.NoError(t, err)
		require.Len(t, processor.jobs, 1)
		assert.Equal(t, "7", processor.jobs[0].Key)
	})

	t.Run("skips other task types", func(t *testing.T) {
		processor := &recordingProcessor{}
		handler := kafka.NewJobDispatcher("risk-analysis", processor, discardLogger())

		err := handler(context.Background(), pkgkafka.Message{Value: []byte(`{"key":"7","type":"send-mail"}`)})

		require.NoError(t, err)
		assert.Empty(t, processor.jobs)
	})

	t.Run("skips malformed messages", func(t *testing.T) {
		processor := &recordingProcessor{}
		handler := kafka.NewJobDispatcher("risk-analysis", processor, discardLogger())

		err := handler(context.Background(), pkgkafka.Message{Key: []byte("x"), Value: []byte(`garbage`)})

		require.NoError(t, err)
		assert.Empty(t, processor.jobs)
	})

	t.Run("propagates processor errors", func(t *testing.T) {
		processor := &recordingProcessor{err: errors.New("broker down")}
		handler := kafka.NewJobDispatcher("risk-analysis", processor, discardLogger())

		err := handler(context.Background(), pkgkafka.Message{Value: []byte(`{"key":"7","type":"risk-analysis"}`)})

		require.Error(t, err)
	})
}

func TestJobReporter(t *testing.T) {
	job := port.Job{Key: "2251799813685249", Type: "risk-analysis", Retries: 2}

	t.Run("complete", func(t *testing.T) {
		pub := &fakePublisher{}
		reporter := kafka.NewJobReporter(pub, "risk-analysis.job-results", "worker-1")

		err := reporter.Complete(context.Background(), job, map[string]any{"topRiskSegment": "A"})

		require.NoError(t, err)
		assert.Equal(t, "risk-analysis.job-results", pub.topic)
		require.Len(t, pub.messages, 1)
		assert.Equal(t, job.Key, string(pub.messages[0].Key))
		assert.Equal(t, kafka.OutcomeCompleted, pub.messages[0].Headers["outcome"])

		var result kafka.ResultMessage
		require.NoError(t, json.Unmarshal(pub.messages[0].Value, &result))
		assert.Equal(t, kafka.OutcomeCompleted, result.Outcome)
		assert.Equal(t, "worker-1", result.WorkerName)
		assert.Equal(t, 2, result.Retries)
		assert.Empty(t, result.ErrorMessage)
		assert.JSONEq(t, `{"topRiskSegment":"A"}`, string(result.Variables))
		assert.False(t, result.CompletedAt.IsZero())
	})

	t.Run("fail carries no variables", func(t *testing.T) {
		pub := &fakePublisher{}
		reporter := kafka.NewJobReporter(pub, "risk-analysis.job-results", "worker-1")

		err := reporter.Fail(context.Background(), job, "risk analysis service unavailable")

		require.NoError(t, err)
		require.Len(t, pub.messages, 1)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(pub.messages[0].Value, &raw))
		assert.Equal(t, kafka.OutcomeFailed, raw["outcome"])
		assert.Equal(t, "risk analysis service unavailable", raw["errorMessage"])
		assert.NotContains(t, raw, "variables")
	})

	t.Run("publish errors are returned", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("leader not available")}
		reporter := kafka.NewJobReporter(pub, "risk-analysis.job-results", "worker-1")

		err := reporter.Fail(context.Background(), job, "x")

		require.Error(t, err)
		assert.Contains(t, err.Error(), job.Key)
	})

	t.Run("unencodable variables", func(t *testing.T) {
		reporter := kafka.NewJobReporter(&fakePublisher{}, "t", "w")

		err := reporter.Complete(context.Background(), job, map[string]any{"bad": make(chan int)})

		require.Error(t, err)
	})
}
