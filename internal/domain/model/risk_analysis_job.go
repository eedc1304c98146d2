package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/AaronStockburger/job-worker/internal/domain/valueobject"
)

// RiskAnalysisJob tracks one unit of work through RECEIVED -> SCORING -> COMPLETED | FAILED.
// A job is created per delivery and discarded once it reaches a terminal state.
type RiskAnalysisJob struct {
	receivedAt time.Time
	finishedAt time.Time
	failure    error
	result     *ScoreResult
	key        string
	taskType   string
	state      valueobject.JobState
	mode       valueobject.AnalysisMode
	decision   valueobject.AnalysisDecision
}

// NewRiskAnalysisJob creates a job in the RECEIVED state.
func NewRiskAnalysisJob(key, taskType string) (*RiskAnalysisJob, error) {
	if key == "" {
		return nil, errors.New("job key is required")
	}
	if taskType == "" {
		return nil, errors.New("task type is required")
	}

	return &RiskAnalysisJob{
		key:        key,
		taskType:   taskType,
		state:      valueobject.JobStateReceived,
		receivedAt: time.Now().UTC(),
	}, nil
}

// BeginScoring records the analysis mode (and the decision it came from, if any)
// and moves the job into SCORING.
func (j *RiskAnalysisJob) BeginScoring(mode valueobject.AnalysisMode, decision valueobject.AnalysisDecision) error {
	if !j.state.Equal(valueobject.JobStateReceived) {
		return fmt.Errorf("cannot begin scoring job %s in state %s", j.key, j.state)
	}
	if mode.IsZero() {
		return fmt.Errorf("cannot begin scoring job %s without an analysis mode", j.key)
	}

	j.mode = mode
	j.decision = decision
	j.state = valueobject.JobStateScoring
	return nil
}

// Complete stores the score result and moves the job into COMPLETED.
func (j *RiskAnalysisJob) Complete(result ScoreResult) error {
	if !j.state.Equal(valueobject.JobStateScoring) {
		return fmt.Errorf("cannot complete job %s in state %s", j.key, j.state)
	}

	j.result = &result
	j.state = valueobject.JobStateCompleted
	j.finishedAt = time.Now().UTC()
	return nil
}

// Fail records the cause and moves the job into FAILED. Any result is discarded.
func (j *RiskAnalysisJob) Fail(cause error) error {
	if j.state.IsTerminal() {
		return fmt.Errorf("cannot fail job %s in terminal state %s", j.key, j.state)
	}
	if cause == nil {
		return fmt.Errorf("cannot fail job %s without a cause", j.key)
	}

	j.failure = cause
	j.result = nil
	j.state = valueobject.JobStateFailed
	j.finishedAt = time.Now().UTC()
	return nil
}

// Duration returns the time from receipt to the terminal transition,
// or zero while the job is still in flight.
func (j *RiskAnalysisJob) Duration() time.Duration {
	if j.finishedAt.IsZero() {
		return 0
	}
	return j.finishedAt.Sub(j.receivedAt)
}

// Result returns the score result of a COMPLETED job.
func (j *RiskAnalysisJob) Result() (ScoreResult, bool) {
	if j.result == nil {
		return ScoreResult{}, false
	}
	return *j.result, true
}

// --- Accessors ---

func (j *RiskAnalysisJob) Key() string                            { return j.key }
func (j *RiskAnalysisJob) TaskType() string                       { return j.taskType }
func (j *RiskAnalysisJob) State() valueobject.JobState            { return j.state }
func (j *RiskAnalysisJob) Mode() valueobject.AnalysisMode         { return j.mode }
func (j *RiskAnalysisJob) Decision() valueobject.AnalysisDecision { return j.decision }
func (j *RiskAnalysisJob) Failure() error                         { return j.failure }
func (j *RiskAnalysisJob) ReceivedAt() time.Time                  { return j.receivedAt }
