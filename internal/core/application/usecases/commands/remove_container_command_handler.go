package commands

import (
	"context"

	"granary/internal/core/domain/model/storage"
)

// RemoveContainerCommandHandler dismantles empty containers.
type RemoveContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveContainerCommandHandler(uowFactory UoWFactory) RemoveContainerCommandHandler {
	return RemoveContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether the container was removed. A missing or non-empty
// container is left alone and yields false without an error.
func (h *RemoveContainerCommandHandler) Handle(ctx context.Context, cmd RemoveContainerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var removed bool
	err := inTransaction(ctx, h.uowFactory, func(ledger *storage.Ledger) error {
		removed = ledger.RemoveContainer(cmd.Kind())
		return nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}
