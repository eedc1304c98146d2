package kafka

import (
	"context"
	"log/slog"

	"github.com/AaronStockburger/job-worker/internal/domain/port"
	pkgkafka "github.com/AaronStockburger/job-worker/pkg/kafka"
)

// JobProcessor handles one decoded job. A returned error means the outcome could
// not be reported and the job must be redelivered.
type JobProcessor interface {
	Process(ctx context.Context, job port.Job) error
}

// NewJobDispatcher returns a consumer handler that decodes intake messages and hands
// jobs of the given task type to the processor. Undecodable messages and jobs of other
// task types are logged and skipped.
func NewJobDispatcher(taskType string, processor JobProcessor, logger *slog.Logger) pkgkafka.Handler {
	return func(ctx context.Context, msg pkgkafka.Message) error {
		job, err := DecodeJob(msg.Value)
		if err != nil {
			logger.Warn("skipping malformed job message", "message_key", string(msg.Key), "error", err)
			return nil
		}

		if job.Type != taskType {
			logger.Debug("skipping job of another task type",
				"job_key", job.Key,
				"task_type", job.Type,
				"want_task_type", taskType,
			)
			return nil
		}

		return processor.Process(ctx, job)
	}
}
