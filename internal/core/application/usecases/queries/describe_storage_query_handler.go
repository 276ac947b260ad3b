package queries

import (
	"context"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
)

// DescribeStorageQueryHandler renders the ledger with the configured labels.
type DescribeStorageQueryHandler struct {
	reader ports.LedgerReader
	labels goods.LabelTable
}

func NewDescribeStorageQueryHandler(reader ports.LedgerReader, labels goods.LabelTable) DescribeStorageQueryHandler {
	return DescribeStorageQueryHandler{reader: reader, labels: labels}
}

func (h DescribeStorageQueryHandler) Handle(ctx context.Context, query DescribeStorageQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var description string
	err := h.reader.View(ctx, func(ledger *storage.Ledger) error {
		description = ledger.Describe(h.labels)
		return nil
	})
	if err != nil {
		return "", err
	}

	return description, nil
}
