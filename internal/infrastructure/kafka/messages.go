package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AaronStockburger/job-worker/internal/domain/port"
)

// Outcomes carried by result messages.
const (
	OutcomeCompleted = "COMPLETED"
	OutcomeFailed    = "FAILED"
)

// JobMessage is the wire form of a job on the intake topic.
type JobMessage struct {
	Deadline           *time.Time     `json:"deadline,omitempty"`
	Variables          map[string]any `json:"variables"`
	Key                string         `json:"key"`
	Type               string         `json:"type"`
	ProcessInstanceKey string         `json:"processInstanceKey,omitempty"`
	BPMNProcessID      string         `json:"bpmnProcessId,omitempty"`
	ElementID          string         `json:"elementId,omitempty"`
	Retries            int            `json:"retries"`
}

// ResultMessage is the wire form of a job outcome on the results topic.
type ResultMessage struct {
	CompletedAt  time.Time       `json:"completedAt"`
	Variables    json.RawMessage `json:"variables,omitempty"`
	Key          string          `json:"key"`
	Type         string          `json:"type"`
	Outcome      string          `json:"outcome"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	WorkerName   string          `json:"workerName"`
	Retries      int             `json:"retries"`
}

// DecodeJob parses an intake message value into a job.
func DecodeJob(value []byte) (port.Job, error) {
	var msg JobMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return port.Job{}, fmt.Errorf("decoding job message: %w", err)
	}
	if msg.Key == "" {
		return port.Job{}, fmt.Errorf("job message has no key")
	}

	job := port.Job{
		Variables:          msg.Variables,
		Key:                msg.Key,
		Type:               msg.Type,
		ProcessInstanceKey: msg.ProcessInstanceKey,
		BPMNProcessID:      msg.BPMNProcessID,
		ElementID:          msg.ElementID,
		Retries:            msg.Retries,
	}
	if msg.Deadline != nil {
		job.Deadline = *msg.Deadline
	}
	if job.Variables == nil {
		job.Variables = map[string]any{}
	}
	return job, nil
}
