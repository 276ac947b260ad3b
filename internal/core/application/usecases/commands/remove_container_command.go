package commands

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/guard"
)

var ErrRemoveContainerCommandIsNotConstructed = errors.New(
	"RemoveContainerCommand must be created via NewRemoveContainerCommand constructor",
)

// RemoveContainerCommand asks the storage to dismantle the empty container of kind.
type RemoveContainerCommand struct { //nolint:recvcheck //using for validation
	kind goods.Kind

	guard guard.ConstructorGuard
}

func NewRemoveContainerCommand(kind goods.Kind) (RemoveContainerCommand, error) {
	command := RemoveContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setKind(kind); err != nil {
		return RemoveContainerCommand{}, err
	}

	return command, nil
}

func (c RemoveContainerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveContainerCommandIsNotConstructed)
}

func (c RemoveContainerCommand) Kind() goods.Kind {
	return c.kind
}

func (c *RemoveContainerCommand) setKind(kind goods.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
