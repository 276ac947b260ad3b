package queries

import (
	"context"

	"granary/internal/core/domain/model/storage"
	"granary/internal/core/ports"
)

type GetAmountQueryHandler struct {
	reader ports.LedgerReader
}

func NewGetAmountQueryHandler(reader ports.LedgerReader) GetAmountQueryHandler {
	return GetAmountQueryHandler{reader: reader}
}

func (h GetAmountQueryHandler) Handle(ctx context.Context, query GetAmountQuery) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var amount float64
	err := h.reader.View(ctx, func(ledger *storage.Ledger) error {
		amount = ledger.AmountOf(query.Kind())
		return nil
	})
	if err != nil {
		return 0, err
	}

	return amount, nil
}
