// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces callers invoke and their
// request/response types.
package primary

import (
	"context"
	"time"
)

// Duration is a value/unit pair as produced by the intent layer,
// e.g. {2, "saat"}.
type Duration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Task is the task view returned to callers.
type Task struct {
	ID           string
	Person       string
	Vehicle      string // empty when no vehicle linked
	Description  string
	Status       string
	CreatedAt    time.Time
	EstimatedEnd *time.Time
	CompletedAt  *time.Time
}

// AssignRequest carries the parameters for a new assignment. Person and
// Vehicle are noisy free-text names; resolution against the registry
// happens inside the coordinator.
type AssignRequest struct {
	Person      string
	Vehicle     string // optional
	Description string
	Duration    *Duration // optional; sets the estimated end
}

// CompleteRequest marks a person's active task as done.
type CompleteRequest struct {
	Person string
}

// CompleteResponse reports a completion. Task is nil for the degenerate
// case where the person had no tracked task and was simply freed.
type CompleteResponse struct {
	Person string // canonical name
	Task   *Task
}

// ExtendRequest extends the estimated end of a person's active task.
type ExtendRequest struct {
	Person   string
	Duration Duration
}

// AllocationService coordinates assign/extend/complete as atomic
// transitions over the personnel, vehicle, and task state. Each call
// either commits fully or leaves all state untouched and returns a typed
// error from the allocation taxonomy.
type AllocationService interface {
	// Assign resolves the named personnel (and vehicle, if given),
	// validates availability, creates an active task, and marks both
	// resources active.
	Assign(ctx context.Context, req AssignRequest) (*Task, error)

	// Complete finishes the person's active task, appends it to the
	// completed ledger, and frees the personnel and any linked vehicle.
	// A person with no active task is still freed (tolerant mode).
	Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error)

	// Extend pushes out the estimated end of the person's active task.
	Extend(ctx context.Context, req ExtendRequest) (*Task, error)
}
