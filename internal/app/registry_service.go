package app

import (
	"context"
	"log/slog"

	"github.com/example/dispatch/internal/core/match"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// RegistryServiceImpl implements the RegistryService interface over the
// personnel and vehicle repositories.
type RegistryServiceImpl struct {
	store           secondary.Store
	matcher         *match.Matcher
	personnelCutoff int
	vehicleCutoff   int
	log             *slog.Logger
}

// NewRegistryService creates a RegistryService with injected dependencies.
// Cutoffs of zero fall back to the default display-regime thresholds.
func NewRegistryService(store secondary.Store, matcher *match.Matcher, personnelCutoff, vehicleCutoff int, log *slog.Logger) *RegistryServiceImpl {
	if personnelCutoff <= 0 {
		personnelCutoff = match.DefaultPersonnelRatioCutoff
	}
	if vehicleCutoff <= 0 {
		vehicleCutoff = match.DefaultVehicleRatioCutoff
	}
	return &RegistryServiceImpl{
		store:           store,
		matcher:         matcher,
		personnelCutoff: personnelCutoff,
		vehicleCutoff:   vehicleCutoff,
		log:             log,
	}
}

// FindPersonnel resolves a noisy name to a canonical personnel name using
// the registry-resolution regime.
func (s *RegistryServiceImpl) FindPersonnel(ctx context.Context, query string) (string, bool, error) {
	names, err := s.store.Repos().Personnel.Names(ctx)
	if err != nil {
		return "", false, wrapStore(err)
	}

	name, ok := s.matcher.Resolve(query, names)
	if ok && name != query {
		s.log.Debug("personnel resolved by fuzzy match", "query", query, "match", name)
	}
	return name, ok, nil
}

// FindVehicle resolves a noisy name to a canonical vehicle name using the
// registry-resolution regime.
func (s *RegistryServiceImpl) FindVehicle(ctx context.Context, query string) (string, bool, error) {
	names, err := s.store.Repos().Vehicles.Names(ctx)
	if err != nil {
		return "", false, wrapStore(err)
	}

	name, ok := s.matcher.Resolve(query, names)
	if ok && name != query {
		s.log.Debug("vehicle resolved by fuzzy match", "query", query, "match", name)
	}
	return name, ok, nil
}

// FindPersonnelDisplay resolves for display contexts via the similarity
// ratio with the personnel cutoff (70 by default).
func (s *RegistryServiceImpl) FindPersonnelDisplay(ctx context.Context, query string) (string, bool, error) {
	names, err := s.store.Repos().Personnel.Names(ctx)
	if err != nil {
		return "", false, wrapStore(err)
	}

	name, ok := s.matcher.ResolveRatio(query, names, s.personnelCutoff)
	return name, ok, nil
}

// FindVehicleDisplay resolves for display contexts via the similarity
// ratio with the vehicle cutoff (80 by default).
func (s *RegistryServiceImpl) FindVehicleDisplay(ctx context.Context, query string) (string, bool, error) {
	names, err := s.store.Repos().Vehicles.Names(ctx)
	if err != nil {
		return "", false, wrapStore(err)
	}

	name, ok := s.matcher.ResolveRatio(query, names, s.vehicleCutoff)
	return name, ok, nil
}

// PersonnelTable returns all personnel in registry order.
func (s *RegistryServiceImpl) PersonnelTable(ctx context.Context) ([]*primary.Personnel, error) {
	records, err := s.store.Repos().Personnel.List(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}

	table := make([]*primary.Personnel, len(records))
	for i, r := range records {
		table[i] = &primary.Personnel{Name: r.Name, Status: r.Status, Vehicle: r.Vehicle}
	}
	return table, nil
}

// VehicleTable returns all vehicles in registry order.
func (s *RegistryServiceImpl) VehicleTable(ctx context.Context) ([]*primary.Vehicle, error) {
	records, err := s.store.Repos().Vehicles.List(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}

	table := make([]*primary.Vehicle, len(records))
	for i, r := range records {
		table[i] = &primary.Vehicle{Name: r.Name, Status: r.Status}
	}
	return table, nil
}
