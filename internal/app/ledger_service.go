package app

import (
	"context"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// LedgerServiceImpl implements the read-only LedgerService over the task
// repository. All mutations go through the allocation coordinator.
type LedgerServiceImpl struct {
	store secondary.Store
}

// NewLedgerService creates a LedgerService with injected dependencies.
func NewLedgerService(store secondary.Store) *LedgerServiceImpl {
	return &LedgerServiceImpl{store: store}
}

// ActiveTasks returns all active tasks, oldest first.
func (s *LedgerServiceImpl) ActiveTasks(ctx context.Context) ([]*primary.Task, error) {
	records, err := s.store.Repos().Tasks.ListActive(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}
	return recordsToTasks(records), nil
}

// CompletedTasks returns the completed ledger, newest first.
func (s *LedgerServiceImpl) CompletedTasks(ctx context.Context) ([]*primary.Task, error) {
	records, err := s.store.Repos().Tasks.ListCompleted(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}
	return recordsToTasks(records), nil
}

// ActiveTaskFor returns the active task for a canonical personnel name,
// or nil when there is none.
func (s *LedgerServiceImpl) ActiveTaskFor(ctx context.Context, person string) (*primary.Task, error) {
	record, err := s.store.Repos().Tasks.ActiveForPerson(ctx, person)
	if err != nil {
		return nil, wrapStore(err)
	}
	if record == nil {
		return nil, nil
	}
	return recordToTask(record), nil
}

func recordsToTasks(records []*secondary.TaskRecord) []*primary.Task {
	tasks := make([]*primary.Task, len(records))
	for i, r := range records {
		tasks[i] = recordToTask(r)
	}
	return tasks
}
