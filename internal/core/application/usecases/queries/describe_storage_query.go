package queries

import (
	"errors"

	"granary/internal/pkg/guard"
)

var ErrDescribeStorageQueryIsNotConstructed = errors.New(
	"DescribeStorageQuery must be created via NewDescribeStorageQuery constructor",
)

// DescribeStorageQuery renders the storage contents as text, one
// "<label>: <amount>" line per container.
type DescribeStorageQuery struct {
	guard guard.ConstructorGuard
}

func NewDescribeStorageQuery() DescribeStorageQuery {
	return DescribeStorageQuery{guard: guard.NewConstructorGuard()}
}

func (q DescribeStorageQuery) Validate() error {
	return q.guard.Validate(ErrDescribeStorageQueryIsNotConstructed)
}
