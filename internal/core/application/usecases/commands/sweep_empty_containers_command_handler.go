package commands

import (
	"context"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"
)

// SweepEmptyContainersCommandHandler removes all empty containers in one transaction.
type SweepEmptyContainersCommandHandler struct {
	uowFactory UoWFactory
}

func NewSweepEmptyContainersCommandHandler(uowFactory UoWFactory) SweepEmptyContainersCommandHandler {
	return SweepEmptyContainersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the kinds whose containers were removed, in goods.All order.
func (h *SweepEmptyContainersCommandHandler) Handle(
	ctx context.Context,
	cmd SweepEmptyContainersCommand,
) ([]goods.Kind, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	removed := make([]goods.Kind, 0)
	err := inTransaction(ctx, h.uowFactory, func(ledger *storage.Ledger) error {
		for _, kind := range ledger.EmptyContainers() {
			if ledger.RemoveContainer(kind) {
				removed = append(removed, kind)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}
