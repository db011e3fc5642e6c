// Package customer holds buyer records used for deliveries.
package customer

import (
	"errors"
	"strings"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id        kernel.UUID
	fullName  string
	phone     string
	email     string
	address   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, fullName, phone, email, address string, createdAt time.Time) (*Customer, error) {
	c := &Customer{createdAt: createdAt, guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), c.Update(fullName, phone, email, address)); err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// NewWalkInCustomer registers a buyer known only by phone, created at the
// till when a delivery is requested for an unknown number.
func NewWalkInCustomer(id kernel.UUID, phone, address string, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, "Customer "+strings.TrimSpace(phone), phone, "", address, createdAt)
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id kernel.UUID, fullName, phone, email, address string, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, fullName, phone, email, address, createdAt)
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) FullName() string {
	return c.fullName
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Update replaces the contact data. Nothing changes on error.
func (c *Customer) Update(fullName, phone, email, address string) error {
	fullName, phone, address = strings.TrimSpace(fullName), strings.TrimSpace(phone), strings.TrimSpace(address)

	var err error
	if fullName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("full name"))
	}
	if phone == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("phone"))
	}
	if address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address"))
	}
	if err != nil {
		return err
	}

	c.fullName = fullName
	c.phone = phone
	c.email = strings.TrimSpace(email)
	c.address = address
	return nil
}
