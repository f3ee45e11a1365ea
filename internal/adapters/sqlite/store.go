// Package sqlite contains SQLite implementations of the repository
// interfaces and the transactional store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dispatch/internal/ports/secondary"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so every repository can
// run either auto-committing or inside one transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements secondary.Store over an injected SQLite handle.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store bound to the given database handle. The store
// takes ownership of the handle; Close releases it.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func reposFor(h dbtx) secondary.Repositories {
	return secondary.Repositories{
		Personnel: &PersonnelRepository{db: h},
		Vehicles:  &VehicleRepository{db: h},
		Tasks:     &TaskRepository{db: h},
	}
}

// Repos returns repositories that execute directly against the store.
func (s *Store) Repos() secondary.Repositories {
	return reposFor(s.db)
}

// Transact runs fn with repositories bound to a single transaction.
// Any error from fn (or from commit) rolls the whole transaction back,
// so a partial failure between row updates never reaches the store.
func (s *Store) Transact(ctx context.Context, fn func(secondary.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(reposFor(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (after: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close releases the backing connection.
func (s *Store) Close() error {
	return s.db.Close()
}
