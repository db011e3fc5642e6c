// Package product is the appliance catalogue.
package product

import (
	"errors"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalogue entry. Quantities live in inventory, one counter
// per warehouse; minQuantity is the low-stock threshold shared by all of them.
type Product struct {
	id          kernel.UUID
	name        string
	category    string
	brand       string
	price       kernel.Money
	minQuantity int

	guard guard.ConstructorGuard
}

func NewProduct(id kernel.UUID, name, category, brand string, price kernel.Money, minQuantity int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), p.Update(name, category, brand, price, minQuantity)); err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(id kernel.UUID, name, category, brand string, price kernel.Money, minQuantity int) (*Product, error) {
	return NewProduct(id, name, category, brand, price, minQuantity)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Brand() string {
	return p.brand
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) MinQuantity() int {
	return p.minQuantity
}

// Update replaces the catalogue data. Nothing changes on error.
func (p *Product) Update(name, category, brand string, price kernel.Money, minQuantity int) error {
	name, category = strings.TrimSpace(name), strings.TrimSpace(category)

	var err error
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if category == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("category"))
	}
	if priceErr := price.Validate(); priceErr != nil {
		err = errors.Join(err, priceErr)
	} else if price.IsZero() {
		err = errors.Join(err, errs.NewValueIsInvalidError("price must be greater than zero"))
	}
	if minQuantity < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("min quantity", minQuantity, 0, "unbounded"))
	}
	if err != nil {
		return err
	}

	p.name = name
	p.category = category
	p.brand = strings.TrimSpace(brand)
	p.price = price
	p.minQuantity = minQuantity
	return nil
}
