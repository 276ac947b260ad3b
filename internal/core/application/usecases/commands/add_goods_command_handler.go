package commands

import (
	"context"

	"granary/internal/core/domain/model/storage"
)

// AddGoodsCommandHandler adds goods to the ledger.
//
// Example:
//
//	handler := NewAddGoodsCommandHandler(uowFactory)
//	cmd, _ := NewAddGoodsCommand(goods.Buckwheat, 12)
//	remainder, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, storage.ErrNoFreeContainerSlot) {
//	    // every container slot is taken
//	}
type AddGoodsCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddGoodsCommandHandler(uowFactory UoWFactory) AddGoodsCommandHandler {
	return AddGoodsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the part of the amount that did not fit into the container.
// Nothing is committed when the ledger rejects the command.
func (h *AddGoodsCommandHandler) Handle(ctx context.Context, cmd AddGoodsCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var remainder float64
	err := inTransaction(ctx, h.uowFactory, func(ledger *storage.Ledger) error {
		var addErr error
		remainder, addErr = ledger.AddGoods(cmd.Kind(), cmd.Amount())
		return addErr
	})
	if err != nil {
		return 0, err
	}

	return remainder, nil
}
