package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Between Begin and
// Commit or Rollback the command has exclusive access to the ledger.
type UnitOfWork interface {
	// Begin acquires the ledger and remembers its state for Rollback.
	Begin(ctx context.Context) error

	// Commit keeps the changes and releases the ledger.
	// Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback restores the state seen by Begin and releases the ledger.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// LedgerRepository returns a repository bound to the current transaction.
	LedgerRepository() LedgerRepository
}
