package allocation

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Cause   error // sentinel from the taxonomy, set when not allowed
}

// Error converts the guard result to a typed error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Cause != nil {
		return fmt.Errorf("%w: %s", r.Cause, r.Reason)
	}
	return fmt.Errorf("%s", r.Reason)
}

// AssignContext provides context for assignment guards.
type AssignContext struct {
	PersonName    string // canonical registry name
	PersonStatus  string
	HasActiveTask bool
	VehicleName   string // canonical, empty if no vehicle requested
	VehicleStatus string // only checked if VehicleName != ""
}

// CanAssign evaluates whether a new task may be assigned.
// Rules:
// - Personnel must be idle (never silently overwrite an assignment)
// - Personnel must have no active task on record
// - Vehicle must be idle (if a vehicle is requested)
func CanAssign(ctx AssignContext) GuardResult {
	if ctx.PersonStatus != StatusIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q is already on an active task", ctx.PersonName),
			Cause:   ErrPersonnelBusy,
		}
	}

	if ctx.HasActiveTask {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q already has an active task on record", ctx.PersonName),
			Cause:   ErrDuplicateActiveTask,
		}
	}

	if ctx.VehicleName != "" && ctx.VehicleStatus != StatusIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q is already in use", ctx.VehicleName),
			Cause:   ErrVehicleBusy,
		}
	}

	return GuardResult{Allowed: true}
}

// ExtendContext provides context for extension guards.
type ExtendContext struct {
	PersonName    string
	HasActiveTask bool
}

// CanExtend evaluates whether an active task's estimated end may be
// extended. The personnel must have an active task.
func CanExtend(ctx ExtendContext) GuardResult {
	if !ctx.HasActiveTask {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q has no active task to extend", ctx.PersonName),
			Cause:   ErrNoActiveTask,
		}
	}

	return GuardResult{Allowed: true}
}
