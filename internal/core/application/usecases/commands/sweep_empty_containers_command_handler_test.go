package commands_test

import (
	"testing"

	"granary/internal/core/application/usecases/commands"
	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepEmptyContainersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("removes only empty containers", func(t *testing.T) {
		// Arrange
		store, factory := newMemoryStore(t)
		add := commands.NewAddGoodsCommandHandler(factory)
		for kind, amount := range map[goods.Kind]float64{goods.Rice: 0, goods.Peas: 3} {
			cmd, err := commands.NewAddGoodsCommand(kind, amount)
			require.NoError(t, err)
			_, err = add.Handle(ctx, cmd)
			require.NoError(t, err)
		}
		handler := commands.NewSweepEmptyContainersCommandHandler(factory)

		// Act
		removed, err := handler.Handle(ctx, commands.NewSweepEmptyContainersCommand())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []goods.Kind{goods.Rice}, removed)
		require.NoError(t, store.View(ctx, func(ledger *storage.Ledger) error {
			assert.Equal(t, 1, ledger.ContainerCount())
			assert.True(t, ledger.HasContainer(goods.Peas))
			return nil
		}))
	})

	t.Run("empty storage yields nothing", func(t *testing.T) {
		_, factory := newMemoryStore(t)
		handler := commands.NewSweepEmptyContainersCommandHandler(factory)

		removed, err := handler.Handle(ctx, commands.NewSweepEmptyContainersCommand())

		require.NoError(t, err)
		assert.Empty(t, removed)
	})

	t.Run("invalid command", func(t *testing.T) {
		handler := commands.NewSweepEmptyContainersCommandHandler(new(MockUoWFactory))

		_, err := handler.Handle(ctx, commands.SweepEmptyContainersCommand{})

		require.ErrorIs(t, err, commands.ErrSweepEmptyContainersCommandIsNotConstructed)
	})
}
