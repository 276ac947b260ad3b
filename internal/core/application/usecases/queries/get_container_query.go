package queries

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/guard"
)

var ErrGetContainerQueryIsNotConstructed = errors.New(
	"GetContainerQuery must be created via NewGetContainerQuery constructor",
)

// GetContainerQuery retrieves a single container. The handler fails with
// errs.ErrObjectNotFound when the storage has no container of the kind.
type GetContainerQuery struct { //nolint:recvcheck //using for validation
	kind goods.Kind

	guard guard.ConstructorGuard
}

func NewGetContainerQuery(kind goods.Kind) (GetContainerQuery, error) {
	query := GetContainerQuery{guard: guard.NewConstructorGuard()}

	if err := query.setKind(kind); err != nil {
		return GetContainerQuery{}, err
	}

	return query, nil
}

func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}

func (q GetContainerQuery) Kind() goods.Kind {
	return q.kind
}

func (q *GetContainerQuery) setKind(kind goods.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	q.kind = kind
	return nil
}
