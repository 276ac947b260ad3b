package commands

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/guard"
)

var ErrAddGoodsCommandIsNotConstructed = errors.New(
	"AddGoodsCommand must be created via NewAddGoodsCommand constructor",
)

// AddGoodsCommand asks the storage to pour amount of kind into its container,
// placing a new container when none exists yet.
//
// Example:
//
//	cmd, err := NewAddGoodsCommand(goods.Rice, 7.5)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	remainder, err := handler.Handle(ctx, cmd)
type AddGoodsCommand struct { //nolint:recvcheck //using for validation
	kind   goods.Kind
	amount float64

	guard guard.ConstructorGuard
}

// NewAddGoodsCommand validates that kind is known and amount is not negative.
func NewAddGoodsCommand(kind goods.Kind, amount float64) (AddGoodsCommand, error) {
	command := AddGoodsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setAmount(amount),
	); err != nil {
		return AddGoodsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddGoodsCommand) Validate() error {
	return c.guard.Validate(ErrAddGoodsCommandIsNotConstructed)
}

func (c AddGoodsCommand) Kind() goods.Kind {
	return c.kind
}

func (c AddGoodsCommand) Amount() float64 {
	return c.amount
}

func (c *AddGoodsCommand) setKind(kind goods.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddGoodsCommand) setAmount(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
