// Package commands contains the operations that change the storage ledger.
// Every command is validated at construction, executed inside a unit of work
// and committed only when the ledger accepted it.
package commands

import (
	"context"
	"fmt"

	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
	"granary/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LedgerRepoFactory provides access to the ledger within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// UoW manages one transaction over the storage ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ledger, err := uow.LedgerRepository().Get(ctx)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LedgerRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// inTransaction runs fn against the ledger and commits when fn succeeds.
// The deferred Rollback undoes every change when fn or Commit fails; after a
// successful Commit it is a harmless no-op.
func inTransaction(ctx context.Context, uowFactory UoWFactory, fn func(ledger *storage.Ledger) error) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger, err := uow.LedgerRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = fn(ledger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func validateAmount(amount float64) error {
	if !(amount >= 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is not greater than or equal to 0", amount),
		)
	}
	return nil
}
