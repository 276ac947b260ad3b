package queries

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/kernel"
	"granary/internal/pkg/guard"
)

var ErrGetStorageQueryIsNotConstructed = errors.New(
	"GetStorageQuery must be created via NewGetStorageQuery constructor",
)

// GetStorageQuery retrieves the capacities and containers of the storage.
//
// Example:
//
//	query := NewGetStorageQuery()
//	handler := NewGetStorageQueryHandler(store, goods.DefaultLabels())
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read storage: %w", err)
//	}
//	fmt.Printf("%d of %d slots free\n", view.FreeContainerSlots, view.MaxContainers)
type GetStorageQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStorageQuery() GetStorageQuery {
	return GetStorageQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStorageQuery) Validate() error {
	return q.guard.Validate(ErrGetStorageQueryIsNotConstructed)
}

// GetStorageQueryResponse is the read model of the whole storage.
type GetStorageQueryResponse struct {
	ID                 kernel.UUID
	ContainerCapacity  float64
	StorageCapacity    float64
	MaxContainers      int
	FreeContainerSlots int
	Containers         []ContainerView
}

// ContainerView describes one container. Containers are listed in goods.All
// order.
type ContainerView struct {
	Kind      goods.Kind
	Label     string
	Amount    float64
	FreeSpace float64
}
