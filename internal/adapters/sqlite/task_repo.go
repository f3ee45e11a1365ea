package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite, split
// across the mutable active_tasks table and the append-only
// completed_tasks ledger.
type TaskRepository struct {
	db dbtx
}

// NewTaskRepository creates a task repository over a database handle.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const activeTaskSelectCols = "id, person, vehicle, description, status, estimated_end, created_at"

// scanTask scans an active task row into a TaskRecord.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskRecord, error) {
	var (
		vehicle      sql.NullString
		estimatedEnd sql.NullTime
		createdAt    time.Time
	)

	record := &secondary.TaskRecord{}
	err := scanner.Scan(&record.ID, &record.Person, &vehicle, &record.Description,
		&record.Status, &estimatedEnd, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Vehicle = vehicle.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if estimatedEnd.Valid {
		record.EstimatedEnd = estimatedEnd.Time.Format(time.RFC3339)
	}
	return record, nil
}

// CreateActive persists a new active task.
func (r *TaskRepository) CreateActive(ctx context.Context, record *secondary.TaskRecord) error {
	var vehicle, estimatedEnd sql.NullString
	if record.Vehicle != "" {
		vehicle = sql.NullString{String: record.Vehicle, Valid: true}
	}
	if record.EstimatedEnd != "" {
		estimatedEnd = sql.NullString{String: record.EstimatedEnd, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO active_tasks (id, person, vehicle, description, status, estimated_end, created_at) VALUES (?, ?, ?, ?, 'active', ?, ?)",
		record.ID, record.Person, vehicle, record.Description, estimatedEnd, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create active task: %w", err)
	}
	return nil
}

// ActiveForPerson retrieves the active task for a canonical personnel
// name, or nil when there is none.
func (r *TaskRepository) ActiveForPerson(ctx context.Context, person string) (*secondary.TaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+activeTaskSelectCols+" FROM active_tasks WHERE person = ?", person)

	record, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active task: %w", err)
	}
	return record, nil
}

// UpdateEstimatedEnd persists a new estimated end on an active task.
func (r *TaskRepository) UpdateEstimatedEnd(ctx context.Context, id, estimatedEnd string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE active_tasks SET estimated_end = ? WHERE id = ?", estimatedEnd, id)
	if err != nil {
		return fmt.Errorf("failed to update estimated end: %w", err)
	}
	return requireRow(res, "active task", id)
}

// DeleteActive removes a task from the active set.
func (r *TaskRepository) DeleteActive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM active_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete active task: %w", err)
	}
	return requireRow(res, "active task", id)
}

// AppendCompleted appends a completed task to the ledger.
func (r *TaskRepository) AppendCompleted(ctx context.Context, record *secondary.TaskRecord) error {
	var vehicle, estimatedEnd, createdAt sql.NullString
	if record.Vehicle != "" {
		vehicle = sql.NullString{String: record.Vehicle, Valid: true}
	}
	if record.EstimatedEnd != "" {
		estimatedEnd = sql.NullString{String: record.EstimatedEnd, Valid: true}
	}
	if record.CreatedAt != "" {
		createdAt = sql.NullString{String: record.CreatedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO completed_tasks (id, person, vehicle, description, status, estimated_end, created_at, completed_at) VALUES (?, ?, ?, ?, 'completed', ?, ?, ?)",
		record.ID, record.Person, vehicle, record.Description, estimatedEnd, createdAt, record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append completed task: %w", err)
	}
	return nil
}

// ListActive retrieves all active tasks, oldest first.
func (r *TaskRepository) ListActive(ctx context.Context) ([]*secondary.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+activeTaskSelectCols+" FROM active_tasks ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active task: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListCompleted retrieves all ledger entries, newest first.
func (r *TaskRepository) ListCompleted(ctx context.Context) ([]*secondary.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, person, vehicle, description, status, estimated_end, created_at, completed_at FROM completed_tasks ORDER BY completed_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TaskRecord
	for rows.Next() {
		var (
			vehicle      sql.NullString
			estimatedEnd sql.NullTime
			createdAt    sql.NullTime
			completedAt  time.Time
		)
		record := &secondary.TaskRecord{}
		err := rows.Scan(&record.ID, &record.Person, &vehicle, &record.Description,
			&record.Status, &estimatedEnd, &createdAt, &completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completed task: %w", err)
		}
		record.Vehicle = vehicle.String
		record.CompletedAt = completedAt.Format(time.RFC3339)
		if estimatedEnd.Valid {
			record.EstimatedEnd = estimatedEnd.Time.Format(time.RFC3339)
		}
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
