package uow

import (
	"context"
	"errors"
)

// State is the lifecycle position of a unit of work.
type State uint8

const (
	Idle State = iota
	InTransaction
	Committed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InTransaction:
		return "in_transaction"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	}
	return "unknown"
}

// ErrInvalidState is returned for a transition the state machine does not allow.
var ErrInvalidState = errors.New("uow: invalid state transition")

// UnitOfWork brackets one transaction.
// Idle -> InTransaction -> (Committed | RolledBack) -> Idle.
type UnitOfWork interface {
	BeginTransaction(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	// State is Idle or InTransaction. Committed and RolledBack are reported by LastOutcome.
	State() State
	LastOutcome() State
	// AfterCommit queues fn to run once the current transaction commits. Rolled back work drops the queue.
	AfterCommit(fn func(ctx context.Context)) error
}

// Factory creates one unit of work per request.
type Factory func() UnitOfWork

type uowCtxKey struct{}

// WithContext binds u to ctx so repositories join its transaction.
func WithContext(ctx context.Context, u UnitOfWork) context.Context {
	return context.WithValue(ctx, uowCtxKey{}, u)
}

// FromContext returns the unit of work bound to ctx.
func FromContext(ctx context.Context) (UnitOfWork, bool) {
	u, ok := ctx.Value(uowCtxKey{}).(UnitOfWork)
	return u, ok
}

// Run executes fn inside a new transaction on u. It commits when fn returns nil and the
// context is still live, and rolls back on error, cancellation or panic. Panics are re-raised.
func Run(ctx context.Context, u UnitOfWork, fn func(ctx context.Context) error) (err error) {
	if err := u.BeginTransaction(ctx); err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := u.Rollback(ctx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	if err = fn(WithContext(ctx, u)); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	committed = true
	return u.Commit(ctx)
}
