package commands

import (
	"errors"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/guard"
)

var ErrTakeGoodsCommandIsNotConstructed = errors.New(
	"TakeGoodsCommand must be created via NewTakeGoodsCommand constructor",
)

// TakeGoodsCommand asks the storage to hand out up to amount of kind.
type TakeGoodsCommand struct { //nolint:recvcheck //using for validation
	kind   goods.Kind
	amount float64

	guard guard.ConstructorGuard
}

// NewTakeGoodsCommand validates that kind is known and amount is not negative.
func NewTakeGoodsCommand(kind goods.Kind, amount float64) (TakeGoodsCommand, error) {
	command := TakeGoodsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setAmount(amount),
	); err != nil {
		return TakeGoodsCommand{}, err
	}

	return command, nil
}

func (c TakeGoodsCommand) Validate() error {
	return c.guard.Validate(ErrTakeGoodsCommandIsNotConstructed)
}

func (c TakeGoodsCommand) Kind() goods.Kind {
	return c.kind
}

func (c TakeGoodsCommand) Amount() float64 {
	return c.amount
}

func (c *TakeGoodsCommand) setKind(kind goods.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *TakeGoodsCommand) setAmount(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
