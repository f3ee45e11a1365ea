// Package wire provides dependency injection for the dispatch
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/dispatch/internal/adapters/sqlite"
	"github.com/example/dispatch/internal/app"
	"github.com/example/dispatch/internal/app/entitylock"
	"github.com/example/dispatch/internal/config"
	"github.com/example/dispatch/internal/core/match"
	"github.com/example/dispatch/internal/db"
	"github.com/example/dispatch/internal/logging"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

var (
	cfg               *config.Config
	store             secondary.Store
	allocationService primary.AllocationService
	registryService   primary.RegistryService
	ledgerService     primary.LedgerService
	commandService    primary.CommandService
	once              sync.Once
)

// AllocationService returns the singleton AllocationService instance.
func AllocationService() primary.AllocationService {
	once.Do(initServices)
	return allocationService
}

// RegistryService returns the singleton RegistryService instance.
func RegistryService() primary.RegistryService {
	once.Do(initServices)
	return registryService
}

// LedgerService returns the singleton LedgerService instance.
func LedgerService() primary.LedgerService {
	once.Do(initServices)
	return ledgerService
}

// CommandService returns the singleton CommandService instance.
func CommandService() primary.CommandService {
	once.Do(initServices)
	return commandService
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Close releases the backing store. Call on shutdown after all service
// use is done.
func Close() error {
	if store == nil {
		return nil
	}
	return store.Close()
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to resolve home directory: %v", err)
	}
	cfg, err = config.LoadOrDefault(home)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}
	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store = sqlite.NewStore(database)

	tieBreak := match.TieBreakFirst
	if cfg.TieBreak == config.TieBreakLast {
		tieBreak = match.TieBreakLast
	}
	matcher := match.New(match.Config{
		Threshold: cfg.ResolveThreshold,
		TieBreak:  tieBreak,
	})

	locks := entitylock.NewRegistry()

	allocationService = app.NewAllocationService(store, matcher, locks, logger)
	registryService = app.NewRegistryService(store, matcher, cfg.PersonnelRatioCutoff, cfg.VehicleRatioCutoff, logger)
	ledgerService = app.NewLedgerService(store)
	commandService = app.NewCommandService(allocationService, logger)
}
