// Package memory keeps the storage ledger in process memory and provides the
// unit of work that serializes access to it.
//
// A LedgerStore owns exactly one ledger. Commands obtain it through a
// UnitOfWork, which holds the store exclusively from Begin until Commit or
// Rollback and restores the state captured at Begin on Rollback. Queries use
// View, which takes the same exclusive hold for the duration of the callback.
//
// Usage:
//
//	ledger, _ := storage.NewLedger(10, 25)
//	store, _ := memory.NewLedgerStore(ledger)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	ledger, err := uow.LedgerRepository().Get(ctx)
//	// mutate ledger ...
//	return uow.Commit(ctx)
package memory

import (
	"context"

	"granary/internal/core/domain/model/storage"
)

// LedgerStore guards the single ledger of the process.
type LedgerStore struct {
	// sem is a one-slot semaphore; acquiring it honors context cancellation.
	sem    chan struct{}
	ledger *storage.Ledger
}

func NewLedgerStore(ledger *storage.Ledger) (*LedgerStore, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	return &LedgerStore{
		sem:    make(chan struct{}, 1),
		ledger: ledger,
	}, nil
}

// View runs fn with exclusive access to the ledger.
func (s *LedgerStore) View(ctx context.Context, fn func(ledger *storage.Ledger) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return fn(s.ledger)
}

func (s *LedgerStore) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *LedgerStore) release() {
	<-s.sem
}
