package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/example/dispatch/internal/app/entitylock"
	"github.com/example/dispatch/internal/core/allocation"
	"github.com/example/dispatch/internal/core/match"
	"github.com/example/dispatch/internal/logging"
	"github.com/example/dispatch/internal/ports/secondary"
)

// memStore is an in-memory secondary.Store for service tests. Transact
// runs against a deep copy of the state and swaps it in only when fn
// succeeds, so rollback semantics match the real store.
type memStore struct {
	mu    sync.Mutex
	state *memState
}

type memState struct {
	personnel []*secondary.PersonnelRecord
	vehicles  []*secondary.VehicleRecord
	active    []*secondary.TaskRecord
	completed []*secondary.TaskRecord
}

func newMemStore() *memStore {
	return &memStore{state: &memState{}}
}

func (s *memStore) Repos() secondary.Repositories {
	return reposFor(s, func() *memState { return s.state })
}

func (s *memStore) Transact(ctx context.Context, fn func(secondary.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	if err := fn(reposFor(nil, func() *memState { return draft })); err != nil {
		return err
	}
	s.state = draft
	return nil
}

func (s *memStore) Close() error { return nil }

func reposFor(lock *memStore, state func() *memState) secondary.Repositories {
	return secondary.Repositories{
		Personnel: &memPersonnelRepo{lock: lock, state: state},
		Vehicles:  &memVehicleRepo{lock: lock, state: state},
		Tasks:     &memTaskRepo{lock: lock, state: state},
	}
}

func (st *memState) clone() *memState {
	out := &memState{}
	for _, p := range st.personnel {
		cp := *p
		out.personnel = append(out.personnel, &cp)
	}
	for _, v := range st.vehicles {
		cv := *v
		out.vehicles = append(out.vehicles, &cv)
	}
	for _, t := range st.active {
		ct := *t
		out.active = append(out.active, &ct)
	}
	for _, t := range st.completed {
		ct := *t
		out.completed = append(out.completed, &ct)
	}
	return out
}

type memPersonnelRepo struct {
	lock  *memStore
	state func() *memState
}

func (r *memPersonnelRepo) locked(fn func(*memState) error) error {
	if r.lock != nil {
		r.lock.mu.Lock()
		defer r.lock.mu.Unlock()
	}
	return fn(r.state())
}

func (r *memPersonnelRepo) Create(ctx context.Context, record *secondary.PersonnelRecord) error {
	return r.locked(func(st *memState) error {
		cp := *record
		cp.Position = len(st.personnel)
		st.personnel = append(st.personnel, &cp)
		return nil
	})
}

func (r *memPersonnelRepo) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.locked(func(st *memState) error {
		for _, p := range st.personnel {
			names = append(names, p.Name)
		}
		return nil
	})
	return names, err
}

func (r *memPersonnelRepo) GetByName(ctx context.Context, name string) (*secondary.PersonnelRecord, error) {
	var out *secondary.PersonnelRecord
	err := r.locked(func(st *memState) error {
		for _, p := range st.personnel {
			if p.Name == name {
				cp := *p
				out = &cp
				return nil
			}
		}
		return fmt.Errorf("personnel %q not found", name)
	})
	return out, err
}

func (r *memPersonnelRepo) List(ctx context.Context) ([]*secondary.PersonnelRecord, error) {
	var out []*secondary.PersonnelRecord
	err := r.locked(func(st *memState) error {
		for _, p := range st.personnel {
			cp := *p
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

func (r *memPersonnelRepo) SetActive(ctx context.Context, name, vehicle string) error {
	return r.locked(func(st *memState) error {
		for _, p := range st.personnel {
			if p.Name == name {
				p.Status = allocation.StatusActive
				p.Vehicle = vehicle
				return nil
			}
		}
		return fmt.Errorf("personnel %q not found", name)
	})
}

func (r *memPersonnelRepo) SetIdle(ctx context.Context, name string) error {
	return r.locked(func(st *memState) error {
		for _, p := range st.personnel {
			if p.Name == name {
				p.Status = allocation.StatusIdle
				p.Vehicle = ""
				return nil
			}
		}
		return fmt.Errorf("personnel %q not found", name)
	})
}

type memVehicleRepo struct {
	lock  *memStore
	state func() *memState
}

func (r *memVehicleRepo) locked(fn func(*memState) error) error {
	if r.lock != nil {
		r.lock.mu.Lock()
		defer r.lock.mu.Unlock()
	}
	return fn(r.state())
}

func (r *memVehicleRepo) Create(ctx context.Context, record *secondary.VehicleRecord) error {
	return r.locked(func(st *memState) error {
		cv := *record
		cv.Position = len(st.vehicles)
		st.vehicles = append(st.vehicles, &cv)
		return nil
	})
}

func (r *memVehicleRepo) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.locked(func(st *memState) error {
		for _, v := range st.vehicles {
			names = append(names, v.Name)
		}
		return nil
	})
	return names, err
}

func (r *memVehicleRepo) GetByName(ctx context.Context, name string) (*secondary.VehicleRecord, error) {
	var out *secondary.VehicleRecord
	err := r.locked(func(st *memState) error {
		for _, v := range st.vehicles {
			if v.Name == name {
				cv := *v
				out = &cv
				return nil
			}
		}
		return fmt.Errorf("vehicle %q not found", name)
	})
	return out, err
}

func (r *memVehicleRepo) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	var out []*secondary.VehicleRecord
	err := r.locked(func(st *memState) error {
		for _, v := range st.vehicles {
			cv := *v
			out = append(out, &cv)
		}
		return nil
	})
	return out, err
}

func (r *memVehicleRepo) SetStatus(ctx context.Context, name, status string) error {
	return r.locked(func(st *memState) error {
		for _, v := range st.vehicles {
			if v.Name == name {
				v.Status = status
				return nil
			}
		}
		return fmt.Errorf("vehicle %q not found", name)
	})
}

type memTaskRepo struct {
	lock  *memStore
	state func() *memState
}

func (r *memTaskRepo) locked(fn func(*memState) error) error {
	if r.lock != nil {
		r.lock.mu.Lock()
		defer r.lock.mu.Unlock()
	}
	return fn(r.state())
}

func (r *memTaskRepo) CreateActive(ctx context.Context, record *secondary.TaskRecord) error {
	return r.locked(func(st *memState) error {
		for _, t := range st.active {
			if t.Person == record.Person {
				return fmt.Errorf("active task for %q already exists", record.Person)
			}
		}
		cp := *record
		st.active = append(st.active, &cp)
		return nil
	})
}

func (r *memTaskRepo) ActiveForPerson(ctx context.Context, person string) (*secondary.TaskRecord, error) {
	var out *secondary.TaskRecord
	err := r.locked(func(st *memState) error {
		for _, t := range st.active {
			if t.Person == person {
				cp := *t
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *memTaskRepo) UpdateEstimatedEnd(ctx context.Context, id, estimatedEnd string) error {
	return r.locked(func(st *memState) error {
		for _, t := range st.active {
			if t.ID == id {
				t.EstimatedEnd = estimatedEnd
				return nil
			}
		}
		return fmt.Errorf("task %q not found", id)
	})
}

func (r *memTaskRepo) DeleteActive(ctx context.Context, id string) error {
	return r.locked(func(st *memState) error {
		for i, t := range st.active {
			if t.ID == id {
				st.active = append(st.active[:i], st.active[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("task %q not found", id)
	})
}

func (r *memTaskRepo) AppendCompleted(ctx context.Context, record *secondary.TaskRecord) error {
	return r.locked(func(st *memState) error {
		cp := *record
		st.completed = append(st.completed, &cp)
		return nil
	})
}

func (r *memTaskRepo) ListActive(ctx context.Context) ([]*secondary.TaskRecord, error) {
	var out []*secondary.TaskRecord
	err := r.locked(func(st *memState) error {
		for _, t := range st.active {
			cp := *t
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

func (r *memTaskRepo) ListCompleted(ctx context.Context) ([]*secondary.TaskRecord, error) {
	var out []*secondary.TaskRecord
	err := r.locked(func(st *memState) error {
		for i := len(st.completed) - 1; i >= 0; i-- {
			cp := *st.completed[i]
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// newTestAllocation wires an AllocationService over a fresh memStore with
// a deterministic clock and task IDs.
func newTestAllocation(t *testing.T, at time.Time) (*AllocationServiceImpl, *memStore) {
	t.Helper()

	store := newMemStore()
	svc := NewAllocationService(store, match.New(match.DefaultConfig()), entitylock.NewRegistry(), logging.Discard())
	svc.now = func() time.Time { return at }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	return svc, store
}

func seedPerson(t *testing.T, store *memStore, name, status, vehicle string) {
	t.Helper()
	err := store.Repos().Personnel.Create(context.Background(), &secondary.PersonnelRecord{
		Name: name, Status: status, Vehicle: vehicle,
	})
	if err != nil {
		t.Fatalf("seed personnel: %v", err)
	}
}

func seedVehicle(t *testing.T, store *memStore, name, status string) {
	t.Helper()
	err := store.Repos().Vehicles.Create(context.Background(), &secondary.VehicleRecord{
		Name: name, Status: status,
	})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
}
