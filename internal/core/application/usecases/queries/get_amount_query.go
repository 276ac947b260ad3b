package queries

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/guard"
)

var ErrGetAmountQueryIsNotConstructed = errors.New(
	"GetAmountQuery must be created via NewGetAmountQuery constructor",
)

// GetAmountQuery asks how much of a kind is stored. A missing container
// holds nothing, so the answer is 0 rather than an error.
type GetAmountQuery struct { //nolint:recvcheck //using for validation
	kind goods.Kind

	guard guard.ConstructorGuard
}

func NewGetAmountQuery(kind goods.Kind) (GetAmountQuery, error) {
	query := GetAmountQuery{guard: guard.NewConstructorGuard()}

	if err := query.setKind(kind); err != nil {
		return GetAmountQuery{}, err
	}

	return query, nil
}

func (q GetAmountQuery) Validate() error {
	return q.guard.Validate(ErrGetAmountQueryIsNotConstructed)
}

func (q GetAmountQuery) Kind() goods.Kind {
	return q.kind
}

func (q *GetAmountQuery) setKind(kind goods.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	q.kind = kind
	return nil
}
