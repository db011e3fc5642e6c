package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrSetStockCommandIsNotConstructed = errors.New(
	"SetStockCommand must be created via NewSetStockCommand constructor",
)

// SetStockCommand overwrites the quantity of a product in a warehouse, as
// counted during a stocktake.
type SetStockCommand struct {
	actor       Actor
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

func NewSetStockCommand(actor Actor, productID, warehouseID kernel.UUID, quantity int) (SetStockCommand, error) {
	var qtyErr error
	if quantity < 0 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	if err := errors.Join(actor.Validate(), productID.Validate(), warehouseID.Validate(), qtyErr); err != nil {
		return SetStockCommand{}, err
	}

	return SetStockCommand{
		actor:       actor,
		productID:   productID,
		warehouseID: warehouseID,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SetStockCommand) Validate() error {
	return c.guard.Validate(ErrSetStockCommandIsNotConstructed)
}

func (c SetStockCommand) Actor() Actor {
	return c.actor
}

func (c SetStockCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetStockCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c SetStockCommand) Quantity() int {
	return c.quantity
}
