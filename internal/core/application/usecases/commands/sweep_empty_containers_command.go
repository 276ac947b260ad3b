package commands

import (
	"errors"

	"granary/internal/pkg/guard"
)

var ErrSweepEmptyContainersCommandIsNotConstructed = errors.New(
	"SweepEmptyContainersCommand must be created via NewSweepEmptyContainersCommand constructor",
)

// SweepEmptyContainersCommand asks the storage to dismantle every empty
// container, freeing their slots for other kinds.
type SweepEmptyContainersCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepEmptyContainersCommand() SweepEmptyContainersCommand {
	return SweepEmptyContainersCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepEmptyContainersCommand) Validate() error {
	return c.guard.Validate(ErrSweepEmptyContainersCommandIsNotConstructed)
}
