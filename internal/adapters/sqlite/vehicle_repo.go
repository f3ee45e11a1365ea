package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dispatch/internal/ports/secondary"
)

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db dbtx
}

// NewVehicleRepository creates a vehicle repository over a database handle.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create persists a new vehicle row at the next registry position.
func (r *VehicleRepository) Create(ctx context.Context, record *secondary.VehicleRecord) error {
	status := record.Status
	if status == "" {
		status = "idle"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles (name, status, position) VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM vehicles))",
		record.Name, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Names returns all canonical vehicle names in registry order.
func (r *VehicleRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM vehicles ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetByName retrieves a vehicle row by its canonical name.
func (r *VehicleRepository) GetByName(ctx context.Context, name string) (*secondary.VehicleRecord, error) {
	record := &secondary.VehicleRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT name, status, position FROM vehicles WHERE name = ?", name,
	).Scan(&record.Name, &record.Status, &record.Position)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// List retrieves all vehicle rows in registry order.
func (r *VehicleRepository) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, status, position FROM vehicles ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var records []*secondary.VehicleRecord
	for rows.Next() {
		record := &secondary.VehicleRecord{}
		if err := rows.Scan(&record.Name, &record.Status, &record.Position); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// SetStatus updates the vehicle status.
func (r *VehicleRepository) SetStatus(ctx context.Context, name, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE vehicles SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		status, name,
	)
	if err != nil {
		return fmt.Errorf("failed to set vehicle status: %w", err)
	}
	return requireRow(res, "vehicle", name)
}
