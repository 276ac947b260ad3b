package memory

import (
	"context"
	"errors"

	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
)

// ErrTransactionIsNotActive is returned by Commit, Rollback and repository
// calls made outside Begin.
var ErrTransactionIsNotActive = errors.New("transaction is not active")

var (
	_ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
	_ ports.LedgerReader      = (*LedgerStore)(nil)
)

// UnitOfWorkFactory creates units of work over one LedgerStore.
type UnitOfWorkFactory struct {
	store *LedgerStore
}

func NewUnitOfWorkFactory(store *LedgerStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork with snapshot based rollback.
// An instance belongs to a single command and is not safe for concurrent use.
type UnitOfWork struct {
	store    *LedgerStore
	snapshot *storage.Ledger
	active   bool
}

// Begin waits for exclusive access to the ledger and snapshots it. Calling
// Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	snapshot, err := snapshotOf(uow.store.ledger)
	if err != nil {
		uow.store.release()
		return err
	}

	uow.snapshot = snapshot
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.finish()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.store.ledger = uow.snapshot
	uow.finish()
	return nil
}

func (uow *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return &ledgerRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.snapshot = nil
	uow.active = false
	uow.store.release()
}

func snapshotOf(ledger *storage.Ledger) (*storage.Ledger, error) {
	return storage.RestoreLedger(
		ledger.ID(),
		ledger.ContainerCapacity(),
		ledger.StorageCapacity(),
		ledger.Contents(),
	)
}

type ledgerRepository struct {
	uow *UnitOfWork
}

func (r *ledgerRepository) Get(ctx context.Context) (*storage.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrTransactionIsNotActive
	}

	return r.uow.store.ledger, nil
}
