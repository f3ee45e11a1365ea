package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show personnel and vehicle availability",
		Long: `Display the registry with current availability. With --filter, show
only the single person whose name best matches the given text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			registry := wire.RegistryService()

			if filter != "" {
				name, ok, err := registry.FindPersonnelDisplay(ctx, filter)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Printf("No personnel matching %q\n", filter)
					return nil
				}
				return printPersonStatus(ctx, name)
			}

			personnel, err := registry.PersonnelTable(ctx)
			if err != nil {
				return err
			}
			vehicles, err := registry.VehicleTable(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\n%-20s %-10s %s\n", "PERSONNEL", "STATUS", "VEHICLE")
			fmt.Println("────────────────────────────────────────────────")
			for _, p := range personnel {
				fmt.Printf("%-20s %-10s %s\n", p.Name, statusLabel(p.Status), p.Vehicle)
			}

			fmt.Printf("\n%-20s %s\n", "VEHICLE", "STATUS")
			fmt.Println("──────────────────────────────")
			for _, v := range vehicles {
				fmt.Printf("%-20s %s\n", v.Name, statusLabel(v.Status))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "show only the person matching this name")
	return cmd
}

func printPersonStatus(ctx context.Context, name string) error {
	task, err := wire.LedgerService().ActiveTaskFor(ctx, name)
	if err != nil {
		return err
	}

	if task == nil {
		fmt.Printf("%s is %s\n", name, statusLabel(allocation.StatusIdle))
		return nil
	}

	fmt.Printf("%s is %s: %s\n", name, statusLabel(allocation.StatusActive), task.Description)
	if task.Vehicle != "" {
		fmt.Printf("  Vehicle: %s\n", task.Vehicle)
	}
	if task.EstimatedEnd != nil {
		fmt.Printf("  Estimated end: %s\n", task.EstimatedEnd.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func statusLabel(status string) string {
	if status == allocation.StatusActive {
		return color.New(color.FgYellow).Sprint(status)
	}
	return color.New(color.FgHiGreen).Sprint(status)
}
