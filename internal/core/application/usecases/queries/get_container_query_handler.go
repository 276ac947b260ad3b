package queries

import (
	"context"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
)

type GetContainerQueryHandler struct {
	reader ports.LedgerReader
	labels goods.LabelTable
}

func NewGetContainerQueryHandler(reader ports.LedgerReader, labels goods.LabelTable) GetContainerQueryHandler {
	return GetContainerQueryHandler{reader: reader, labels: labels}
}

func (h GetContainerQueryHandler) Handle(ctx context.Context, query GetContainerQuery) (ContainerView, error) {
	if err := query.Validate(); err != nil {
		return ContainerView{}, err
	}

	var view ContainerView
	err := h.reader.View(ctx, func(ledger *storage.Ledger) error {
		freeSpace, err := ledger.FreeSpaceOf(query.Kind())
		if err != nil {
			return err
		}

		view = toContainerView(storage.Container{
			Kind:      query.Kind(),
			Amount:    ledger.AmountOf(query.Kind()),
			FreeSpace: freeSpace,
		}, h.labels)
		return nil
	})
	if err != nil {
		return ContainerView{}, err
	}

	return view, nil
}
