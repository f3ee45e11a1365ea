package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/cli"
	"github.com/example/dispatch/internal/version"
	"github.com/example/dispatch/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dispatch",
		Short:   "dispatch - fleet task allocation for field crews",
		Version: version.String(),
		Long: `dispatch tracks who is doing what with which vehicle. It resolves
noisy Turkish names against the registry, assigns and completes tasks
atomically, and keeps an append-only ledger of finished work.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.DoneCmd())
	rootCmd.AddCommand(cli.ExtendCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.LedgerCmd())
	rootCmd.AddCommand(cli.CommandCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
