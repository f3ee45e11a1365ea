package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dispatch/internal/adapters/sqlite"
	"github.com/example/dispatch/internal/ports/secondary"
)

func TestTaskRepository_CreateActiveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskRepository(database)
	ctx := context.Background()

	seedPersonnel(t, database, "Ahmet Yılmaz", 0)
	seedVehicle(t, database, "Vinç 1", 0)

	now := time.Now().UTC().Truncate(time.Second)
	err := repo.CreateActive(ctx, &secondary.TaskRecord{
		ID:           "task-001",
		Person:       "Ahmet Yılmaz",
		Vehicle:      "Vinç 1",
		Description:  "taşıma",
		Status:       "active",
		EstimatedEnd: now.Add(2 * time.Hour).Format(time.RFC3339),
		CreatedAt:    now.Format(time.RFC3339),
	})
	require.NoError(t, err)

	record, err := repo.ActiveForPerson(ctx, "Ahmet Yılmaz")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "task-001", record.ID)
	assert.Equal(t, "Vinç 1", record.Vehicle)
	assert.Equal(t, "taşıma", record.Description)
	assert.Equal(t, now.Add(2*time.Hour).Format(time.RFC3339), record.EstimatedEnd)
}

func TestTaskRepository_ActiveForPersonNone(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskRepository(database)

	record, err := repo.ActiveForPerson(context.Background(), "Ahmet Yılmaz")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestTaskRepository_DuplicateActivePersonRejected(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskRepository(database)
	ctx := context.Background()

	seedPersonnel(t, database, "Ahmet Yılmaz", 0)
	seedActiveTask(t, database, "task-001", "Ahmet Yılmaz", "")

	// The unique index on person backs invariant 3 at the store level.
	err := repo.CreateActive(ctx, &secondary.TaskRecord{
		ID:          "task-002",
		Person:      "Ahmet Yılmaz",
		Description: "ikinci iş",
		Status:      "active",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	assert.Error(t, err)
}

func TestTaskRepository_UpdateEstimatedEnd(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskRepository(database)
	ctx := context.Background()

	seedPersonnel(t, database, "Ahmet Yılmaz", 0)
	seedActiveTask(t, database, "task-001", "Ahmet Yılmaz", "")

	end := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second).Format(time.RFC3339)
	require.NoError(t, repo.UpdateEstimatedEnd(ctx, "task-001", end))

	record, err := repo.ActiveForPerson(ctx, "Ahmet Yılmaz")
	require.NoError(t, err)
	assert.Equal(t, end, record.EstimatedEnd)

	assert.ErrorContains(t, repo.UpdateEstimatedEnd(ctx, "task-999", end), "not found")
}

func TestTaskRepository_CompleteMovesToLedger(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskRepository(database)
	ctx := context.Background()

	seedPersonnel(t, database, "Ahmet Yılmaz", 0)
	seedVehicle(t, database, "Vinç 1", 0)
	seedActiveTask(t, database, "task-001", "Ahmet Yılmaz", "Vinç 1")

	record, err := repo.ActiveForPerson(ctx, "Ahmet Yılmaz")
	require.NoError(t, err)

	completedAt := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	record.Status = "completed"
	record.CompletedAt = completedAt
	require.NoError(t, repo.AppendCompleted(ctx, record))
	require.NoError(t, repo.DeleteActive(ctx, record.ID))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	completed, err := repo.ListCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "task-001", completed[0].ID)
	assert.Equal(t, "Vinç 1", completed[0].Vehicle)
	assert.Equal(t, completedAt, completed[0].CompletedAt)
}
