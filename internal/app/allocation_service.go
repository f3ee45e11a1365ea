package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/dispatch/internal/app/entitylock"
	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/core/match"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// AllocationServiceImpl implements the AllocationService interface. Each
// operation resolves noisy names against the registry, takes the
// per-entity locks for the resolved names, and applies the transition
// inside a single store transaction so a guard failure leaves no partial
// state behind.
type AllocationServiceImpl struct {
	store   secondary.Store
	matcher *match.Matcher
	locks   *entitylock.Registry
	log     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewAllocationService creates an AllocationService with injected
// dependencies.
func NewAllocationService(store secondary.Store, matcher *match.Matcher, locks *entitylock.Registry, log *slog.Logger) *AllocationServiceImpl {
	return &AllocationServiceImpl{
		store:   store,
		matcher: matcher,
		locks:   locks,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Assign resolves the named personnel (and vehicle, if given), validates
// availability, creates an active task, and marks both resources active.
func (s *AllocationServiceImpl) Assign(ctx context.Context, req primary.AssignRequest) (*primary.Task, error) {
	// Parse the duration before touching any state so a malformed pair
	// fails without resolving names.
	var estimate time.Duration
	if req.Duration != nil {
		var err error
		estimate, err = allocation.Duration{Value: req.Duration.Value, Unit: req.Duration.Unit}.Resolve()
		if err != nil {
			return nil, err
		}
	}

	person, err := s.resolvePersonnel(ctx, req.Person)
	if err != nil {
		return nil, err
	}

	var vehicle string
	if req.Vehicle != "" {
		vehicle, err = s.resolveVehicle(ctx, req.Vehicle)
		if err != nil {
			return nil, err
		}
	}

	keys := s.locks.Acquire(person, vehicle)
	defer s.locks.Release(keys)

	createdAt := s.now()
	record := &secondary.TaskRecord{
		ID:          s.newID(),
		Person:      person,
		Vehicle:     vehicle,
		Description: req.Description,
		Status:      allocation.TaskStatusActive,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339),
	}
	if req.Duration != nil {
		record.EstimatedEnd = createdAt.Add(estimate).UTC().Format(time.RFC3339)
	}

	err = s.store.Transact(ctx, func(repos secondary.Repositories) error {
		personRecord, err := repos.Personnel.GetByName(ctx, person)
		if err != nil {
			return err
		}

		activeTask, err := repos.Tasks.ActiveForPerson(ctx, person)
		if err != nil {
			return err
		}

		guardCtx := allocation.AssignContext{
			PersonName:    person,
			PersonStatus:  personRecord.Status,
			HasActiveTask: activeTask != nil,
		}
		if vehicle != "" {
			vehicleRecord, err := repos.Vehicles.GetByName(ctx, vehicle)
			if err != nil {
				return err
			}
			guardCtx.VehicleName = vehicle
			guardCtx.VehicleStatus = vehicleRecord.Status
		}
		if result := allocation.CanAssign(guardCtx); !result.Allowed {
			return result.Error()
		}

		if err := repos.Tasks.CreateActive(ctx, record); err != nil {
			return err
		}
		if err := repos.Personnel.SetActive(ctx, person, vehicle); err != nil {
			return err
		}
		if vehicle != "" {
			if err := repos.Vehicles.SetStatus(ctx, vehicle, allocation.StatusActive); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapStore(err)
	}

	s.log.Info("task assigned",
		"task", record.ID,
		"person", person,
		"vehicle", vehicle,
		"estimated_end", record.EstimatedEnd)
	return recordToTask(record), nil
}

// Complete finishes the person's active task, appends it to the completed
// ledger, and frees the personnel and any linked vehicle. A person with
// no active task is still freed.
func (s *AllocationServiceImpl) Complete(ctx context.Context, req primary.CompleteRequest) (*primary.CompleteResponse, error) {
	person, err := s.resolvePersonnel(ctx, req.Person)
	if err != nil {
		return nil, err
	}

	keys, err := s.lockPersonWithVehicle(ctx, person)
	if err != nil {
		return nil, err
	}
	defer s.locks.Release(keys)

	resp := &primary.CompleteResponse{Person: person}
	err = s.store.Transact(ctx, func(repos secondary.Repositories) error {
		task, err := repos.Tasks.ActiveForPerson(ctx, person)
		if err != nil {
			return err
		}

		if task == nil {
			// No tracked task: free the person (and any stale vehicle
			// link) anyway so the registry never sticks on "active".
			personRecord, err := repos.Personnel.GetByName(ctx, person)
			if err != nil {
				return err
			}
			if err := repos.Personnel.SetIdle(ctx, person); err != nil {
				return err
			}
			if personRecord.Vehicle != "" {
				return repos.Vehicles.SetStatus(ctx, personRecord.Vehicle, allocation.StatusIdle)
			}
			return nil
		}

		task.Status = allocation.TaskStatusCompleted
		task.CompletedAt = s.now().UTC().Format(time.RFC3339)
		if err := repos.Tasks.AppendCompleted(ctx, task); err != nil {
			return err
		}
		if err := repos.Tasks.DeleteActive(ctx, task.ID); err != nil {
			return err
		}
		if err := repos.Personnel.SetIdle(ctx, person); err != nil {
			return err
		}
		if task.Vehicle != "" {
			if err := repos.Vehicles.SetStatus(ctx, task.Vehicle, allocation.StatusIdle); err != nil {
				return err
			}
		}
		resp.Task = recordToTask(task)
		return nil
	})
	if err != nil {
		return nil, wrapStore(err)
	}

	if resp.Task == nil {
		s.log.Info("personnel freed with no tracked task", "person", person)
	} else {
		s.log.Info("task completed", "task", resp.Task.ID, "person", person, "vehicle", resp.Task.Vehicle)
	}
	return resp, nil
}

// Extend pushes out the estimated end of the person's active task. When
// the task carries no estimate yet, the extension anchors at the current
// time.
func (s *AllocationServiceImpl) Extend(ctx context.Context, req primary.ExtendRequest) (*primary.Task, error) {
	extension, err := allocation.Duration{Value: req.Duration.Value, Unit: req.Duration.Unit}.Resolve()
	if err != nil {
		return nil, err
	}

	person, err := s.resolvePersonnel(ctx, req.Person)
	if err != nil {
		return nil, err
	}

	keys := s.locks.Acquire(person)
	defer s.locks.Release(keys)

	var updated *primary.Task
	err = s.store.Transact(ctx, func(repos secondary.Repositories) error {
		task, err := repos.Tasks.ActiveForPerson(ctx, person)
		if err != nil {
			return err
		}
		if result := allocation.CanExtend(allocation.ExtendContext{
			PersonName:    person,
			HasActiveTask: task != nil,
		}); !result.Allowed {
			return result.Error()
		}

		anchor := s.now()
		if task.EstimatedEnd != "" {
			if ts, err := time.Parse(time.RFC3339, task.EstimatedEnd); err == nil {
				anchor = ts
			}
		}
		task.EstimatedEnd = anchor.Add(extension).UTC().Format(time.RFC3339)

		if err := repos.Tasks.UpdateEstimatedEnd(ctx, task.ID, task.EstimatedEnd); err != nil {
			return err
		}
		updated = recordToTask(task)
		return nil
	})
	if err != nil {
		return nil, wrapStore(err)
	}

	s.log.Info("task extended",
		"task", updated.ID,
		"person", person,
		"estimated_end", updated.EstimatedEnd.Format(time.RFC3339))
	return updated, nil
}

// resolvePersonnel maps a noisy personnel name to its canonical registry
// form.
func (s *AllocationServiceImpl) resolvePersonnel(ctx context.Context, query string) (string, error) {
	names, err := s.store.Repos().Personnel.Names(ctx)
	if err != nil {
		return "", wrapStore(err)
	}
	name, ok := s.matcher.Resolve(query, names)
	if !ok {
		return "", fmt.Errorf("%w: %q", allocation.ErrPersonnelNotFound, query)
	}
	return name, nil
}

// resolveVehicle maps a noisy vehicle name to its canonical registry form.
func (s *AllocationServiceImpl) resolveVehicle(ctx context.Context, query string) (string, error) {
	names, err := s.store.Repos().Vehicles.Names(ctx)
	if err != nil {
		return "", wrapStore(err)
	}
	name, ok := s.matcher.Resolve(query, names)
	if !ok {
		return "", fmt.Errorf("%w: %q", allocation.ErrVehicleNotFound, query)
	}
	return name, nil
}

// lockPersonWithVehicle acquires the locks for a person and their linked
// vehicle. The link is only known from the person row, so it is read
// unlocked first and re-checked under the lock; a change between the two
// reads means another operation moved the person and we retry.
func (s *AllocationServiceImpl) lockPersonWithVehicle(ctx context.Context, person string) ([]string, error) {
	for {
		record, err := s.store.Repos().Personnel.GetByName(ctx, person)
		if err != nil {
			return nil, wrapStore(err)
		}

		keys := s.locks.Acquire(person, record.Vehicle)

		current, err := s.store.Repos().Personnel.GetByName(ctx, person)
		if err != nil {
			s.locks.Release(keys)
			return nil, wrapStore(err)
		}
		if current.Vehicle == record.Vehicle {
			return keys, nil
		}
		s.locks.Release(keys)
	}
}
