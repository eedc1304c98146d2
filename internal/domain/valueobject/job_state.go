package valueobject

// JobState is the lifecycle state of a risk analysis job.
type JobState struct {
	value string
}

var (
	JobStateReceived  = JobState{value: "RECEIVED"}
	JobStateScoring   = JobState{value: "SCORING"}
	JobStateCompleted = JobState{value: "COMPLETED"}
	JobStateFailed    = JobState{value: "FAILED"}
)

// String returns the string representation.
func (s JobState) String() string {
	return s.value
}

// IsTerminal returns true for COMPLETED and FAILED.
func (s JobState) IsTerminal() bool {
	return s == JobStateCompleted || s == JobStateFailed
}

// Equal checks equality with another JobState.
func (s JobState) Equal(other JobState) bool {
	return s.value == other.value
}
