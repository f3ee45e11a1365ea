package primary

import "context"

// CommandType tags an inbound structured command from the external
// intent-extraction collaborator.
type CommandType string

const (
	CommandNewTask        CommandType = "new_task"
	CommandTaskDone       CommandType = "task_done"
	CommandExtendDuration CommandType = "extend_duration"
)

// Command is the inbound command contract. Exactly the fields relevant
// to the tagged type are set; the rest stay zero.
type Command struct {
	Type     CommandType `json:"type"`
	Person   string      `json:"person"`
	Task     string      `json:"task,omitempty"`
	Vehicle  string      `json:"vehicle,omitempty"`
	Duration *Duration   `json:"duration,omitempty"`
}

// CommandResult reports the outcome of one executed command.
type CommandResult struct {
	Message string
	Task    *Task // set when the command produced or touched a task
}

// CommandService routes inbound commands to the allocation coordinator.
// Unrecognized tags are reported as ErrUnrecognizedCommand without any
// state mutation.
type CommandService interface {
	// Execute runs one structured command.
	Execute(ctx context.Context, cmd Command) (*CommandResult, error)

	// ExecuteRaw decodes a JSON command payload and runs it.
	ExecuteRaw(ctx context.Context, payload []byte) (*CommandResult, error)
}
