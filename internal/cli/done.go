package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// DoneCmd returns the done command
func DoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [person]",
		Short: "Mark a person's active task as completed",
		Long: `Complete the active task of the named person, move it to the
completed ledger, and free the person and any vehicle they were using.
A person with no tracked task is still marked idle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.AllocationService().Complete(context.Background(), primary.CompleteRequest{
				Person: args[0],
			})
			if err != nil {
				return err
			}

			if resp.Task == nil {
				fmt.Printf("✓ %s had no tracked task and is now free\n", resp.Person)
				return nil
			}

			fmt.Printf("✓ %s completed: %s\n", resp.Person, resp.Task.Description)
			if resp.Task.Vehicle != "" {
				fmt.Printf("  Vehicle %s is free again\n", resp.Task.Vehicle)
			}
			return nil
		},
	}
}
