package queries

import (
	"context"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
)

type GetStorageQueryHandler struct {
	reader ports.LedgerReader
	labels goods.LabelTable
}

func NewGetStorageQueryHandler(reader ports.LedgerReader, labels goods.LabelTable) GetStorageQueryHandler {
	return GetStorageQueryHandler{reader: reader, labels: labels}
}

func (h GetStorageQueryHandler) Handle(ctx context.Context, query GetStorageQuery) (GetStorageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStorageQueryResponse{}, err
	}

	var response GetStorageQueryResponse
	err := h.reader.View(ctx, func(ledger *storage.Ledger) error {
		response = GetStorageQueryResponse{
			ID:                 ledger.ID(),
			ContainerCapacity:  ledger.ContainerCapacity(),
			StorageCapacity:    ledger.StorageCapacity(),
			MaxContainers:      ledger.MaxContainers(),
			FreeContainerSlots: ledger.FreeContainerSlots(),
			Containers:         toContainerViews(ledger.Containers(), h.labels),
		}
		return nil
	})
	if err != nil {
		return GetStorageQueryResponse{}, err
	}

	return response, nil
}

func toContainerViews(containers []storage.Container, labels goods.LabelTable) []ContainerView {
	views := make([]ContainerView, 0, len(containers))
	for _, container := range containers {
		views = append(views, toContainerView(container, labels))
	}
	return views
}

func toContainerView(container storage.Container, labels goods.LabelTable) ContainerView {
	return ContainerView{
		Kind:      container.Kind,
		Label:     labels.Label(container.Kind),
		Amount:    container.Amount,
		FreeSpace: container.FreeSpace,
	}
}
