package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	var vehicle string
	var duration string

	cmd := &cobra.Command{
		Use:   "assign [person] [task description...]",
		Short: "Assign a task to a person",
		Long: `Assign a task to a person, optionally with a vehicle and an
estimated duration. Names are matched against the registry, so typos
and missing Turkish characters are tolerated ("ahmet yilmaz" finds
"Ahmet Yılmaz").

Examples:
  dispatch assign "ahmet yilmaz" malzeme taşıma --vehicle "vinç 1" --duration "2 saat"
  dispatch assign mehmet stok sayımı`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dur, err := parseDurationFlag(duration)
			if err != nil {
				return err
			}

			task, err := wire.AllocationService().Assign(context.Background(), primary.AssignRequest{
				Person:      args[0],
				Vehicle:     vehicle,
				Description: strings.Join(args[1:], " "),
				Duration:    dur,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Assigned %s: %s\n", task.Person, task.Description)
			if task.Vehicle != "" {
				fmt.Printf("  Vehicle: %s\n", task.Vehicle)
			}
			if task.EstimatedEnd != nil {
				fmt.Printf("  Estimated end: %s\n", task.EstimatedEnd.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicle, "vehicle", "", "vehicle to use for the task")
	cmd.Flags().StringVar(&duration, "duration", "", `estimated duration, e.g. "2 saat" or "1 gün"`)
	return cmd
}
