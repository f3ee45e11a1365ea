// Package app implements the primary port services: registry resolution,
// the task ledger, and the allocation coordinator.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// recordToTask maps a persistence record to the caller-facing task view.
func recordToTask(record *secondary.TaskRecord) *primary.Task {
	task := &primary.Task{
		ID:          record.ID,
		Person:      record.Person,
		Vehicle:     record.Vehicle,
		Description: record.Description,
		Status:      record.Status,
	}

	if ts, err := time.Parse(time.RFC3339, record.CreatedAt); err == nil {
		task.CreatedAt = ts
	}
	if record.EstimatedEnd != "" {
		if ts, err := time.Parse(time.RFC3339, record.EstimatedEnd); err == nil {
			task.EstimatedEnd = &ts
		}
	}
	if record.CompletedAt != "" {
		if ts, err := time.Parse(time.RFC3339, record.CompletedAt); err == nil {
			task.CompletedAt = &ts
		}
	}
	return task
}

// wrapStore converts backing-store failures into ErrStoreUnavailable.
// Taxonomy errors pass through untouched so callers keep the specific
// failure.
func wrapStore(err error) error {
	if err == nil {
		return nil
	}
	if isTaxonomy(err) {
		return err
	}
	return fmt.Errorf("%w: %v", allocation.ErrStoreUnavailable, err)
}

func isTaxonomy(err error) bool {
	for _, sentinel := range []error{
		allocation.ErrPersonnelNotFound,
		allocation.ErrVehicleNotFound,
		allocation.ErrPersonnelBusy,
		allocation.ErrVehicleBusy,
		allocation.ErrNoActiveTask,
		allocation.ErrDuplicateActiveTask,
		allocation.ErrInvalidDuration,
		allocation.ErrStoreUnavailable,
		allocation.ErrUnrecognizedCommand,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
