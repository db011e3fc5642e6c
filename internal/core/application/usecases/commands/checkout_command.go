package commands

import (
	"errors"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// DeliveryRequest asks for the receipt to be shipped. The customer is found
// by phone or registered on the spot.
type DeliveryRequest struct {
	DeliveryID kernel.UUID
	Phone      string
	Address    string
	Notes      string
}

func (r DeliveryRequest) validate() error {
	var err error
	if idErr := r.DeliveryID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if strings.TrimSpace(r.Phone) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer phone"))
	}
	if strings.TrimSpace(r.Address) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("delivery address"))
	}
	return err
}

// CheckoutCommand rings up a cart in the cashier's warehouse.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(actor, kernel.NewUUID(), []services.CartLine{
//	    {ProductID: fridgeID, Quantity: 1},
//	}, &DeliveryRequest{DeliveryID: kernel.NewUUID(), Phone: "+79001112233", Address: "Mira 5"})
type CheckoutCommand struct {
	actor    Actor
	saleID   kernel.UUID
	cart     []services.CartLine
	delivery *DeliveryRequest

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(
	actor Actor,
	saleID kernel.UUID,
	cart []services.CartLine,
	delivery *DeliveryRequest,
) (CheckoutCommand, error) {
	var cartErr, deliveryErr error
	if len(cart) == 0 {
		cartErr = services.ErrEmptyCart
	}
	if delivery != nil {
		deliveryErr = delivery.validate()
	}
	if err := errors.Join(actor.Validate(), saleID.Validate(), cartErr, deliveryErr); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		actor:    actor,
		saleID:   saleID,
		cart:     append([]services.CartLine(nil), cart...),
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Actor() Actor {
	return c.actor
}

func (c CheckoutCommand) SaleID() kernel.UUID {
	return c.saleID
}

func (c CheckoutCommand) Cart() []services.CartLine {
	return c.cart
}

// Delivery is nil for carry-out purchases.
func (c CheckoutCommand) Delivery() *DeliveryRequest {
	return c.delivery
}
