package primary

import "context"

// LedgerService exposes the task ledger for reporting: the mutable
// active set and the append-only completed set. All mutations go through
// the AllocationService; this surface is read-only.
type LedgerService interface {
	// ActiveTasks returns all active tasks, oldest first.
	ActiveTasks(ctx context.Context) ([]*Task, error)

	// CompletedTasks returns the completed ledger, newest first.
	CompletedTasks(ctx context.Context) ([]*Task, error)

	// ActiveTaskFor returns the active task for a canonical personnel
	// name, or nil when there is none.
	ActiveTaskFor(ctx context.Context, person string) (*Task, error)
}
