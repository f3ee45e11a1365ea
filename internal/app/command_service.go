package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/ports/primary"
)

// CommandServiceImpl routes inbound structured commands to the
// allocation coordinator. Decode failures and unknown tags surface as
// ErrUnrecognizedCommand without any state mutation.
type CommandServiceImpl struct {
	alloc primary.AllocationService
	log   *slog.Logger
}

// NewCommandService creates a CommandService with injected dependencies.
func NewCommandService(alloc primary.AllocationService, log *slog.Logger) *CommandServiceImpl {
	return &CommandServiceImpl{alloc: alloc, log: log}
}

// ExecuteRaw decodes a JSON command payload and runs it.
func (s *CommandServiceImpl) ExecuteRaw(ctx context.Context, payload []byte) (*primary.CommandResult, error) {
	var cmd primary.Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", allocation.ErrUnrecognizedCommand, err)
	}
	return s.Execute(ctx, cmd)
}

// Execute runs one structured command.
func (s *CommandServiceImpl) Execute(ctx context.Context, cmd primary.Command) (*primary.CommandResult, error) {
	s.log.Debug("executing command", "type", string(cmd.Type), "person", cmd.Person)

	switch cmd.Type {
	case primary.CommandNewTask:
		task, err := s.alloc.Assign(ctx, primary.AssignRequest{
			Person:      cmd.Person,
			Vehicle:     cmd.Vehicle,
			Description: cmd.Task,
			Duration:    cmd.Duration,
		})
		if err != nil {
			return nil, err
		}
		return &primary.CommandResult{
			Message: fmt.Sprintf("%s assigned: %s", task.Person, task.Description),
			Task:    task,
		}, nil

	case primary.CommandTaskDone:
		resp, err := s.alloc.Complete(ctx, primary.CompleteRequest{Person: cmd.Person})
		if err != nil {
			return nil, err
		}
		if resp.Task == nil {
			return &primary.CommandResult{
				Message: fmt.Sprintf("%s had no tracked task and is now free", resp.Person),
			}, nil
		}
		return &primary.CommandResult{
			Message: fmt.Sprintf("%s completed: %s", resp.Person, resp.Task.Description),
			Task:    resp.Task,
		}, nil

	case primary.CommandExtendDuration:
		if cmd.Duration == nil {
			return nil, fmt.Errorf("%w: extend_duration requires a duration", allocation.ErrInvalidDuration)
		}
		task, err := s.alloc.Extend(ctx, primary.ExtendRequest{
			Person:   cmd.Person,
			Duration: *cmd.Duration,
		})
		if err != nil {
			return nil, err
		}
		return &primary.CommandResult{
			Message: fmt.Sprintf("%s extended until %s", task.Person, task.EstimatedEnd.Format("2006-01-02 15:04")),
			Task:    task,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown command type %q", allocation.ErrUnrecognizedCommand, cmd.Type)
	}
}
