package models

import "time"

// EventKind classifies rows of the failure/ban event log.
type EventKind string

const (
	// EventKindFailure records a single failed authentication attempt.
	EventKindFailure EventKind = "failure"

	// EventKindBan records an escalation: enough failures accumulated
	// inside the relevance window that the IP is banned for the configured
	// ban duration.
	EventKindBan EventKind = "ban"
)

// FailureEvent is one timestamped row of the failure/ban event log, keyed
// by the client IP. Throttling decisions are derived from windowed counts
// over these rows, never from a separately maintained counter.
type FailureEvent struct {
	ID         int64     `json:"-"`
	IP         string    `json:"ip"`
	Kind       EventKind `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TableName returns the name of the database table
// associated with the FailureEvent model.
func (e FailureEvent) TableName() string {
	return "failure_events"
}
