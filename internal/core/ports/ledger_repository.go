// Package ports defines the contracts between the granary application layer
// and the adapters that hold the storage ledger.
package ports

import (
	"context"

	"granary/internal/core/domain/model/storage"
)

// LedgerRepository gives a unit of work access to the storage ledger.
type LedgerRepository interface {
	// Get returns the ledger bound to the current transaction. Changes made
	// to it become visible to others on Commit and are discarded on Rollback.
	Get(ctx context.Context) (*storage.Ledger, error)
}

// LedgerReader gives queries serialized, read-only access to the ledger.
type LedgerReader interface {
	// View calls fn while no command can modify the ledger. fn must not
	// retain the ledger nor mutate it.
	View(ctx context.Context, fn func(ledger *storage.Ledger) error) error
}
