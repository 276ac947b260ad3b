package commands_test

import (
	"errors"
	"testing"

	"granary/internal/core/application/usecases/commands"
	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddGoodsCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ledger := newLedger(t)
	_, err := ledger.AddGoods(goods.Buckwheat, 5)
	require.NoError(t, err)

	cmd, err := commands.NewAddGoodsCommand(goods.Buckwheat, 6)
	require.NoError(t, err)

	mockRepo := new(MockLedgerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LedgerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx).Return(ledger, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	remainder, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 1.0, remainder, 0.01)
	assert.InDelta(t, 10.0, ledger.AmountOf(goods.Buckwheat), 0.01)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AddGoodsCommand
	mockFactory := new(MockUoWFactory)
	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrAddGoodsCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddGoodsCommand(goods.Rice, 1)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_GetLedgerError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddGoodsCommand(goods.Rice, 1)
	require.NoError(t, err)

	expectedError := errors.New("ledger unavailable")
	mockRepo := new(MockLedgerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LedgerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx).Return((*storage.Ledger)(nil), expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_NoFreeSlot(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ledger := newLedger(t)
	_, err := ledger.AddGoods(goods.Buckwheat, 10)
	require.NoError(t, err)
	_, err = ledger.AddGoods(goods.Rice, 7)
	require.NoError(t, err)

	cmd, err := commands.NewAddGoodsCommand(goods.Bulgur, 6)
	require.NoError(t, err)

	mockRepo := new(MockLedgerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LedgerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx).Return(ledger, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	remainder, err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, storage.ErrNoFreeContainerSlot)
	assert.InDelta(t, 0.0, remainder, 0.01)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddGoodsCommand(goods.Rice, 1)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockLedgerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("LedgerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx).Return(newLedger(t), nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddGoodsCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}

func TestAddGoodsCommandHandler_Handle_WithMemoryStore(t *testing.T) {
	// Arrange
	ctx := t.Context()
	store, factory := newMemoryStore(t)
	handler := commands.NewAddGoodsCommandHandler(factory)

	for _, kind := range []goods.Kind{goods.Buckwheat, goods.Rice} {
		cmd, err := commands.NewAddGoodsCommand(kind, 4)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	cmd, err := commands.NewAddGoodsCommand(goods.Bulgur, 6)
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, storage.ErrNoFreeContainerSlot)
	require.NoError(t, store.View(ctx, func(ledger *storage.Ledger) error {
		assert.Equal(t, 2, ledger.ContainerCount())
		assert.InDelta(t, 4.0, ledger.AmountOf(goods.Rice), 0.01)
		return nil
	}))
}
