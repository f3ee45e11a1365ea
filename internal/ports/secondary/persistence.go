// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the backing store.
package secondary

import "context"

// PersonnelRecord represents a personnel row as stored in persistence.
// Name is the canonical registry key. Timestamps are RFC3339 strings;
// empty means NULL.
type PersonnelRecord struct {
	Name     string
	Status   string // "idle" or "active"
	Vehicle  string // canonical vehicle name, empty when none assigned
	Position int    // stable registry order, drives resolution candidate order
}

// VehicleRecord represents a vehicle row as stored in persistence.
type VehicleRecord struct {
	Name     string
	Status   string // "idle" or "active"
	Position int
}

// TaskRecord represents a task row. Active and completed tasks share the
// shape; completed rows live in the append-only ledger table and are
// never mutated again.
type TaskRecord struct {
	ID           string
	Person       string // canonical personnel name
	Vehicle      string // canonical vehicle name, empty when none
	Description  string
	Status       string // "active" or "completed"
	EstimatedEnd string // RFC3339, empty when no estimate
	CreatedAt    string // RFC3339
	CompletedAt  string // RFC3339, set only on ledger rows
}

// PersonnelRepository defines the secondary port for personnel persistence.
type PersonnelRepository interface {
	// Create persists a new personnel row at the next registry position.
	Create(ctx context.Context, record *PersonnelRecord) error

	// Names returns all canonical personnel names in registry order.
	Names(ctx context.Context) ([]string, error)

	// GetByName retrieves a personnel row by its canonical name.
	GetByName(ctx context.Context, name string) (*PersonnelRecord, error)

	// List retrieves all personnel rows in registry order.
	List(ctx context.Context) ([]*PersonnelRecord, error)

	// SetActive marks the personnel active and links the vehicle
	// (empty vehicle clears the link).
	SetActive(ctx context.Context, name, vehicle string) error

	// SetIdle marks the personnel idle and clears the vehicle link.
	SetIdle(ctx context.Context, name string) error
}

// VehicleRepository defines the secondary port for vehicle persistence.
type VehicleRepository interface {
	// Create persists a new vehicle row at the next registry position.
	Create(ctx context.Context, record *VehicleRecord) error

	// Names returns all canonical vehicle names in registry order.
	Names(ctx context.Context) ([]string, error)

	// GetByName retrieves a vehicle row by its canonical name.
	GetByName(ctx context.Context, name string) (*VehicleRecord, error)

	// List retrieves all vehicle rows in registry order.
	List(ctx context.Context) ([]*VehicleRecord, error)

	// SetStatus updates the vehicle status.
	SetStatus(ctx context.Context, name, status string) error
}

// TaskRepository defines the secondary port for task persistence across
// the active set and the completed ledger.
type TaskRepository interface {
	// CreateActive persists a new active task.
	CreateActive(ctx context.Context, record *TaskRecord) error

	// ActiveForPerson retrieves the active task for a canonical personnel
	// name, or nil when there is none.
	ActiveForPerson(ctx context.Context, person string) (*TaskRecord, error)

	// UpdateEstimatedEnd persists a new estimated end on an active task.
	UpdateEstimatedEnd(ctx context.Context, id, estimatedEnd string) error

	// DeleteActive removes a task from the active set.
	DeleteActive(ctx context.Context, id string) error

	// AppendCompleted appends a completed task to the ledger.
	AppendCompleted(ctx context.Context, record *TaskRecord) error

	// ListActive retrieves all active tasks, oldest first.
	ListActive(ctx context.Context) ([]*TaskRecord, error)

	// ListCompleted retrieves all ledger entries, newest first.
	ListCompleted(ctx context.Context) ([]*TaskRecord, error)
}

// Repositories bundles the entity repositories bound to one store handle
// or to one open transaction.
type Repositories struct {
	Personnel PersonnelRepository
	Vehicles  VehicleRepository
	Tasks     TaskRepository
}

// Store is the single explicit store abstraction. It owns the backing
// connection lifecycle and hands out repositories, either auto-committing
// or bound to one serializable transaction.
type Store interface {
	// Repos returns repositories that execute directly against the store.
	Repos() Repositories

	// Transact runs fn with repositories bound to a single transaction.
	// A non-nil error from fn rolls back every mutation made inside it.
	Transact(ctx context.Context, fn func(Repositories) error) error

	// Close releases the backing connection.
	Close() error
}
