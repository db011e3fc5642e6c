package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrCancelSaleCommandIsNotConstructed = errors.New(
	"CancelSaleCommand must be created via NewCancelSaleCommand constructor",
)

type CancelSaleCommand struct {
	actor  Actor
	saleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelSaleCommand(actor Actor, saleID kernel.UUID) (CancelSaleCommand, error) {
	if err := errors.Join(actor.Validate(), saleID.Validate()); err != nil {
		return CancelSaleCommand{}, err
	}
	return CancelSaleCommand{actor: actor, saleID: saleID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelSaleCommand) Validate() error {
	return c.guard.Validate(ErrCancelSaleCommandIsNotConstructed)
}

func (c CancelSaleCommand) Actor() Actor {
	return c.actor
}

func (c CancelSaleCommand) SaleID() kernel.UUID {
	return c.saleID
}
