package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// ExtendCmd returns the extend command
func ExtendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend [person] [duration...]",
		Short: "Extend the estimated end of a person's active task",
		Long: `Push out the estimated end of the named person's active task.

Examples:
  dispatch extend "ahmet yilmaz" 2 saat
  dispatch extend mehmet 1 gün`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dur, err := parseDurationFlag(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if dur == nil {
				return fmt.Errorf("missing duration, e.g. \"2 saat\"")
			}

			task, err := wire.AllocationService().Extend(context.Background(), primary.ExtendRequest{
				Person:   args[0],
				Duration: *dur,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Extended %s: %s\n", task.Person, task.Description)
			if task.EstimatedEnd != nil {
				fmt.Printf("  New estimated end: %s\n", task.EstimatedEnd.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
