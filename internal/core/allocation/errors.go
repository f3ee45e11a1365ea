// Package allocation contains the pure business logic for assignment
// transitions: guards, duration arithmetic, and the error taxonomy.
// Guards are pure functions that evaluate preconditions without side effects.
package allocation

import "errors"

// Sentinel errors for allocation operations. Callers discriminate with
// errors.Is; the wrapped message always names the entity involved.
var (
	ErrPersonnelNotFound   = errors.New("personnel not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrPersonnelBusy       = errors.New("personnel busy")
	ErrVehicleBusy         = errors.New("vehicle busy")
	ErrNoActiveTask        = errors.New("no active task")
	ErrDuplicateActiveTask = errors.New("duplicate active task")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrUnrecognizedCommand = errors.New("command not understood")
)

// Personnel and vehicle status values. Active and idle are mutually
// exclusive; a personnel or vehicle is active iff an active task
// references it.
const (
	StatusIdle   = "idle"
	StatusActive = "active"
)

// Task status values. Completed is terminal; completed tasks are
// append-only ledger entries.
const (
	TaskStatusActive    = "active"
	TaskStatusCompleted = "completed"
)
