package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/wire"
)

// LedgerCmd returns the ledger command
func LedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the task ledger",
		Long:  "List active tasks (oldest first) or completed tasks (newest first)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "active",
		Short: "List active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := wire.LedgerService().ActiveTasks(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No active tasks")
				return nil
			}
			printTaskTable(tasks, "EST. END", func(t *primary.Task) string {
				if t.EstimatedEnd == nil {
					return ""
				}
				return t.EstimatedEnd.Local().Format("2006-01-02 15:04")
			})
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "completed",
		Short: "List completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := wire.LedgerService().CompletedTasks(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No completed tasks")
				return nil
			}
			printTaskTable(tasks, "COMPLETED", func(t *primary.Task) string {
				if t.CompletedAt == nil {
					return ""
				}
				return t.CompletedAt.Local().Format("2006-01-02 15:04")
			})
			return nil
		},
	})

	return cmd
}

func printTaskTable(tasks []*primary.Task, timeHeader string, timeCol func(*primary.Task) string) {
	fmt.Printf("\n%-20s %-15s %-17s %s\n", "PERSON", "VEHICLE", timeHeader, "TASK")
	fmt.Println("────────────────────────────────────────────────────────────────────────")
	for _, t := range tasks {
		fmt.Printf("%-20s %-15s %-17s %s\n", t.Person, t.Vehicle, timeCol(t), t.Description)
	}
	fmt.Println()
}
