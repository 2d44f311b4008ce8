package uow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"oddly-ddd/pkg/log"
)

// Executor is the query surface shared by *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ExecutorFrom returns the transaction of the unit of work bound to ctx, or db when none is open.
func ExecutorFrom(ctx context.Context, db *sql.DB) Executor {
	if u, ok := FromContext(ctx); ok {
		if s, ok := u.(*SQL); ok {
			if tx := s.Tx(); tx != nil {
				return tx
			}
		}
	}
	return db
}

// SQL is a unit of work over database/sql.
type SQL struct {
	db *sql.DB
	l  log.Logger

	mu    sync.Mutex
	state State
	last  State
	tx    *sql.Tx
	hooks []func(ctx context.Context)
}

// NewSQL creates an idle unit of work on db.
func NewSQL(db *sql.DB, l log.Logger) *SQL {
	return &SQL{db: db, l: l}
}

// NewSQLFactory returns a Factory producing SQL units of work on db.
func NewSQLFactory(db *sql.DB, l log.Logger) Factory {
	return func() UnitOfWork { return NewSQL(db, l) }
}

func (u *SQL) BeginTransaction(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != Idle {
		return fmt.Errorf("%w: begin while %s", ErrInvalidState, u.state)
	}
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("uow: begin: %w", err)
	}
	u.tx = tx
	u.state = InTransaction
	return nil
}

// Commit commits the transaction and then runs the after-commit hooks in order.
// A failed commit leaves the unit rolled back and skips the hooks.
func (u *SQL) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.state != InTransaction {
		state := u.state
		u.mu.Unlock()
		return fmt.Errorf("%w: commit while %s", ErrInvalidState, state)
	}

	err := u.tx.Commit()
	hooks := u.hooks
	u.reset()
	if err != nil {
		u.last = RolledBack
		u.mu.Unlock()
		return fmt.Errorf("uow: commit: %w", err)
	}
	u.last = Committed
	u.mu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
	return nil
}

func (u *SQL) Rollback(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != InTransaction {
		return fmt.Errorf("%w: rollback while %s", ErrInvalidState, u.state)
	}

	err := u.tx.Rollback()
	u.reset()
	u.last = RolledBack
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		u.l.Errorf(ctx, "uow.SQL.Rollback: %v", err)
		return fmt.Errorf("uow: rollback: %w", err)
	}
	return nil
}

func (u *SQL) AfterCommit(fn func(ctx context.Context)) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != InTransaction {
		return fmt.Errorf("%w: after-commit hook while %s", ErrInvalidState, u.state)
	}
	u.hooks = append(u.hooks, fn)
	return nil
}

func (u *SQL) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *SQL) LastOutcome() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.last
}

// Tx returns the open transaction, nil when idle.
func (u *SQL) Tx() *sql.Tx {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tx
}

// reset must be called with mu held.
func (u *SQL) reset() {
	u.tx = nil
	u.hooks = nil
	u.state = Idle
}
