package sale

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
)

// Line is one receipt position. The unit price is frozen at checkout so
// later catalogue changes do not alter past sales.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
}

func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	var qtyErr error
	if quantity <= 0 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := errors.Join(productID.Validate(), qtyErr, unitPrice.Validate()); err != nil {
		return Line{}, err
	}
	return Line{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Total() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
