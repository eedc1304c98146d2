package port

import (
	"context"
	"time"
)

// Job is one unit of work handed over by the orchestration engine.
type Job struct {
	Deadline           time.Time
	Variables          map[string]any
	Key                string
	Type               string
	ProcessInstanceKey string
	BPMNProcessID      string
	ElementID          string
	Retries            int
}

// JobReporter defines the port for reporting the terminal outcome of a job back
// to the orchestration engine. Exactly one of the methods is called per job.
type JobReporter interface {
	// Complete reports success. variables is encoded as a JSON object.
	Complete(ctx context.Context, job Job, variables any) error

	// Fail reports failure with a human-readable message.
	Fail(ctx context.Context, job Job, errorMessage string) error
}
