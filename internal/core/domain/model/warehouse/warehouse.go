// Package warehouse holds the stock locations of the retailer.
package warehouse

import (
	"errors"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a stock location. Employees and stock counters belong to one.
type Warehouse struct {
	id      kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewWarehouse(id kernel.UUID, name, address string) (*Warehouse, error) {
	w := &Warehouse{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), w.Rename(name, address)); err != nil {
		return nil, err
	}

	w.id = id
	return w, nil
}

// RestoreWarehouse rebuilds a warehouse from persistence.
func RestoreWarehouse(id kernel.UUID, name, address string) (*Warehouse, error) {
	return NewWarehouse(id, name, address)
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) Address() string {
	return w.address
}

// Rename replaces both name and address. Nothing changes on error.
func (w *Warehouse) Rename(name, address string) error {
	name, address = strings.TrimSpace(name), strings.TrimSpace(address)

	var err error
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address"))
	}
	if err != nil {
		return err
	}

	w.name = name
	w.address = address
	return nil
}
