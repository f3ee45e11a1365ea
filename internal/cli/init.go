package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the dispatch database and config",
		Long:  `Initialize the dispatch database at ~/.dispatch/dispatch.db with the required schema and write a default config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}
			fmt.Printf("Initializing dispatch database at %s\n", dbPath)

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			fmt.Println("✓ Database initialized successfully")

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}
			if _, err := config.LoadConfig(home); err != nil {
				if err := config.SaveConfig(home, config.Default()); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Println("✓ Config file created at ~/.dispatch/config.json")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  dispatch seed")
			fmt.Println("  dispatch status")

			return nil
		},
	}
}
