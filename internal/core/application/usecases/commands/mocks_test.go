package commands_test

import (
	"context"
	"testing"

	"granary/internal/adapters/out/memory"
	"granary/internal/core/application/usecases/commands"
	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Get(ctx context.Context) (*storage.Ledger, error) {
	args := m.Called(ctx)
	return args.Get(0).(*storage.Ledger), args.Error(1)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// memoryUoWFactory adapts the in-memory adapter for end-to-end handler tests.
type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

func newMemoryStore(t *testing.T) (*memory.LedgerStore, commands.UoWFactory) {
	t.Helper()
	ledger, err := storage.NewLedger(10, 25)
	require.NoError(t, err)
	store, err := memory.NewLedgerStore(ledger)
	require.NoError(t, err)
	return store, memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
}

func newLedger(t *testing.T) *storage.Ledger {
	t.Helper()
	ledger, err := storage.NewLedger(10, 25)
	require.NoError(t, err)
	return ledger
}
