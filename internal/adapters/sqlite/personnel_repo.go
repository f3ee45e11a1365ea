package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dispatch/internal/ports/secondary"
)

// PersonnelRepository implements secondary.PersonnelRepository with SQLite.
type PersonnelRepository struct {
	db dbtx
}

// NewPersonnelRepository creates a personnel repository over a database
// handle.
func NewPersonnelRepository(db *sql.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

const personnelSelectCols = "name, status, vehicle, position"

// scanPersonnel scans a personnel row into a PersonnelRecord.
func scanPersonnel(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PersonnelRecord, error) {
	var vehicle sql.NullString

	record := &secondary.PersonnelRecord{}
	err := scanner.Scan(&record.Name, &record.Status, &vehicle, &record.Position)
	if err != nil {
		return nil, err
	}

	record.Vehicle = vehicle.String
	return record, nil
}

// Create persists a new personnel row at the next registry position.
func (r *PersonnelRepository) Create(ctx context.Context, record *secondary.PersonnelRecord) error {
	status := record.Status
	if status == "" {
		status = "idle"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO personnel (name, status, position) VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM personnel))",
		record.Name, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create personnel: %w", err)
	}
	return nil
}

// Names returns all canonical personnel names in registry order.
func (r *PersonnelRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM personnel ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan personnel name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetByName retrieves a personnel row by its canonical name.
func (r *PersonnelRepository) GetByName(ctx context.Context, name string) (*secondary.PersonnelRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+personnelSelectCols+" FROM personnel WHERE name = ?", name)

	record, err := scanPersonnel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("personnel %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return record, nil
}

// List retrieves all personnel rows in registry order.
func (r *PersonnelRepository) List(ctx context.Context) ([]*secondary.PersonnelRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+personnelSelectCols+" FROM personnel ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PersonnelRecord
	for rows.Next() {
		record, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// SetActive marks the personnel active and links the vehicle.
func (r *PersonnelRepository) SetActive(ctx context.Context, name, vehicle string) error {
	var v sql.NullString
	if vehicle != "" {
		v = sql.NullString{String: vehicle, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE personnel SET status = 'active', vehicle = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		v, name,
	)
	if err != nil {
		return fmt.Errorf("failed to set personnel active: %w", err)
	}
	return requireRow(res, "personnel", name)
}

// SetIdle marks the personnel idle and clears the vehicle link.
func (r *PersonnelRepository) SetIdle(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE personnel SET status = 'idle', vehicle = NULL, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to set personnel idle: %w", err)
	}
	return requireRow(res, "personnel", name)
}

// requireRow converts a zero-row update into an error naming the entity.
func requireRow(res sql.Result, kind, name string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s %q not found", kind, name)
	}
	return nil
}
