package primary

import "context"

// Personnel is the personnel status view returned to callers.
type Personnel struct {
	Name    string
	Status  string
	Vehicle string // empty when none assigned
}

// Vehicle is the vehicle status view returned to callers.
type Vehicle struct {
	Name   string
	Status string
}

// RegistryService resolves noisy names against the current registries and
// exposes the read-only status tables.
//
// FindPersonnel and FindVehicle use the registry-resolution regime
// (composite score, threshold 60). The Display variants use the
// similarity-ratio regime with stricter cutoffs (70 for personnel, 80 for
// vehicles) and exist for list/filter surfaces only; never use them to
// pick a mutation target.
type RegistryService interface {
	// FindPersonnel resolves a noisy name to a canonical personnel name.
	FindPersonnel(ctx context.Context, query string) (string, bool, error)

	// FindVehicle resolves a noisy name to a canonical vehicle name.
	FindVehicle(ctx context.Context, query string) (string, bool, error)

	// FindPersonnelDisplay resolves for display contexts (ratio >= 70).
	FindPersonnelDisplay(ctx context.Context, query string) (string, bool, error)

	// FindVehicleDisplay resolves for display contexts (ratio >= 80).
	FindVehicleDisplay(ctx context.Context, query string) (string, bool, error)

	// PersonnelTable returns all personnel in registry order.
	PersonnelTable(ctx context.Context) ([]*Personnel, error)

	// VehicleTable returns all vehicles in registry order.
	VehicleTable(ctx context.Context) ([]*Vehicle, error)
}
