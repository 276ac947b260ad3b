package commands

import (
	"context"

	"granary/internal/core/domain/model/storage"
)

// TakeGoodsCommandHandler withdraws goods from the ledger.
type TakeGoodsCommandHandler struct {
	uowFactory UoWFactory
}

func NewTakeGoodsCommandHandler(uowFactory UoWFactory) TakeGoodsCommandHandler {
	return TakeGoodsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the amount actually taken, which is less than requested
// when the container held less, and 0 when there is no container.
func (h *TakeGoodsCommandHandler) Handle(ctx context.Context, cmd TakeGoodsCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var taken float64
	err := inTransaction(ctx, h.uowFactory, func(ledger *storage.Ledger) error {
		var takeErr error
		taken, takeErr = ledger.TakeGoods(cmd.Kind(), cmd.Amount())
		return takeErr
	})
	if err != nil {
		return 0, err
	}

	return taken, nil
}
