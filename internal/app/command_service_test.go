package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/logging"
	"github.com/example/dispatch/internal/ports/primary"
)

func newTestCommand(t *testing.T) (*CommandServiceImpl, *memStore) {
	t.Helper()
	alloc, store := newTestAllocation(t, testClock)
	return NewCommandService(alloc, logging.Discard()), store
}

func TestExecuteNewTask(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")
	seedVehicle(t, store, "Vinç 1", allocation.StatusIdle)

	result, err := svc.Execute(context.Background(), primary.Command{
		Type:     primary.CommandNewTask,
		Person:   "ahmet yilmaz",
		Task:     "taşıma",
		Vehicle:  "vinç 1",
		Duration: &primary.Duration{Value: 2, Unit: "saat"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.Equal(t, "Ahmet Yılmaz", result.Task.Person)
	assert.Contains(t, result.Message, "taşıma")
}

func TestExecuteTaskDone(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")
	ctx := context.Background()

	_, err := svc.Execute(ctx, primary.Command{
		Type:   primary.CommandNewTask,
		Person: "ahmet",
		Task:   "sayım",
	})
	require.NoError(t, err)

	result, err := svc.Execute(ctx, primary.Command{
		Type:   primary.CommandTaskDone,
		Person: "ahmet",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.Equal(t, allocation.TaskStatusCompleted, result.Task.Status)
}

func TestExecuteTaskDoneDegenerate(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ali Baydemir", allocation.StatusActive, "")

	result, err := svc.Execute(context.Background(), primary.Command{
		Type:   primary.CommandTaskDone,
		Person: "ali baydemir",
	})
	require.NoError(t, err)
	assert.Nil(t, result.Task)
	assert.Contains(t, result.Message, "Ali Baydemir")
}

func TestExecuteExtendDuration(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")
	ctx := context.Background()

	_, err := svc.Execute(ctx, primary.Command{
		Type:     primary.CommandNewTask,
		Person:   "ahmet",
		Task:     "taşıma",
		Duration: &primary.Duration{Value: 1, Unit: "saat"},
	})
	require.NoError(t, err)

	result, err := svc.Execute(ctx, primary.Command{
		Type:     primary.CommandExtendDuration,
		Person:   "ahmet",
		Duration: &primary.Duration{Value: 1, Unit: "gün"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	require.NotNil(t, result.Task.EstimatedEnd)
	assert.Equal(t, testClock.Add(25*time.Hour), *result.Task.EstimatedEnd)
}

func TestExecuteExtendWithoutDuration(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")

	_, err := svc.Execute(context.Background(), primary.Command{
		Type:   primary.CommandExtendDuration,
		Person: "ahmet",
	})
	require.ErrorIs(t, err, allocation.ErrInvalidDuration)
}

func TestExecuteUnknownType(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")
	ctx := context.Background()

	_, err := svc.Execute(ctx, primary.Command{Type: "launch_rocket", Person: "ahmet"})
	require.ErrorIs(t, err, allocation.ErrUnrecognizedCommand)

	// No mutation on unknown tags.
	person, getErr := store.Repos().Personnel.GetByName(ctx, "Ahmet Yılmaz")
	require.NoError(t, getErr)
	assert.Equal(t, allocation.StatusIdle, person.Status)
}

func TestExecuteRaw(t *testing.T) {
	svc, store := newTestCommand(t)
	seedPerson(t, store, "Ahmet Yılmaz", allocation.StatusIdle, "")
	ctx := context.Background()

	payload := []byte(`{"type":"new_task","person":"ahmet yilmaz","task":"taşıma","duration":{"value":2,"unit":"saat"}}`)
	result, err := svc.ExecuteRaw(ctx, payload)
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.Equal(t, "Ahmet Yılmaz", result.Task.Person)

	_, err = svc.ExecuteRaw(ctx, []byte(`{not json`))
	require.ErrorIs(t, err, allocation.ErrUnrecognizedCommand)
}
