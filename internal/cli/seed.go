package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo personnel and vehicle registry",
		Long:  `Populate an empty registry with the demo fleet: five personnel and four vehicles. Fails if the registry already has entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}
			cfg, err := config.LoadOrDefault(home)
			if err != nil {
				return err
			}

			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath, err = db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to get database path: %w", err)
				}
			}
			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			if err := db.SeedFixtures(database); err != nil {
				return err
			}

			fmt.Println("✓ Registry seeded with demo personnel and vehicles")
			fmt.Println()
			fmt.Println("Try:")
			fmt.Println(`  dispatch assign "ahmet yilmaz" malzeme taşıma --vehicle "vinç 1" --duration "2 saat"`)
			fmt.Println("  dispatch status")

			return nil
		},
	}
}
