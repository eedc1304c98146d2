package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AaronStockburger/job-worker/internal/domain/port"
	pkgkafka "github.com/AaronStockburger/job-worker/pkg/kafka"
)

// Publisher is the subset of pkg/kafka.Producer used for reporting.
type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// JobReporter publishes job outcomes to the results topic, keyed by job key.
type JobReporter struct {
	publisher  Publisher
	now        func() time.Time
	topic      string
	workerName string
}

// NewJobReporter creates a new JobReporter.
func NewJobReporter(publisher Publisher, topic, workerName string) *JobReporter {
	return &JobReporter{
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
		topic:      topic,
		workerName: workerName,
	}
}

// Complete publishes a COMPLETED result carrying the output variables.
func (r *JobReporter) Complete(ctx context.Context, job port.Job, variables any) error {
	raw, err := json.Marshal(variables)
	if err != nil {
		return fmt.Errorf("encoding output variables of job %s: %w", job.Key, err)
	}

	return r.publish(ctx, ResultMessage{
		CompletedAt: r.now(),
		Variables:   raw,
		Key:         job.Key,
		Type:        job.Type,
		Outcome:     OutcomeCompleted,
		WorkerName:  r.workerName,
		Retries:     job.Retries,
	})
}

// Fail publishes a FAILED result with the error message and no variables.
func (r *JobReporter) Fail(ctx context.Context, job port.Job, errorMessage string) error {
	return r.publish(ctx, ResultMessage{
		CompletedAt:  r.now(),
		Key:          job.Key,
		Type:         job.Type,
		Outcome:      OutcomeFailed,
		ErrorMessage: errorMessage,
		WorkerName:   r.workerName,
		Retries:      job.Retries,
	})
}

func (r *JobReporter) publish(ctx context.Context, result ResultMessage) error {
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result of job %s: %w", result.Key, err)
	}

	msg := pkgkafka.Message{
		Key:   []byte(result.Key),
		Value: value,
		Headers: map[string]string{
			"content-type": "application/json",
			"outcome":      result.Outcome,
		},
	}
	if err := r.publisher.Publish(ctx, r.topic, msg); err != nil {
		return fmt.Errorf("reporting job %s: %w", result.Key, err)
	}
	return nil
}

var _ port.JobReporter = (*JobReporter)(nil)
