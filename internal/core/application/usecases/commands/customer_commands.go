package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrSaveCustomerCommandIsNotConstructed = errors.New(
		"SaveCustomerCommand must be created via NewSaveCustomerCommand constructor",
	)
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

type CustomerContacts struct {
	FullName string
	Phone    string
	Email    string
	Address  string
}

type SaveCustomerCommand struct {
	id       kernel.UUID
	contacts CustomerContacts

	guard guard.ConstructorGuard
}

func NewSaveCustomerCommand(id kernel.UUID, contacts CustomerContacts) (SaveCustomerCommand, error) {
	if err := id.Validate(); err != nil {
		return SaveCustomerCommand{}, err
	}
	return SaveCustomerCommand{id: id, contacts: contacts, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

func (c SaveCustomerCommand) ID() kernel.UUID {
	return c.id
}

func (c SaveCustomerCommand) Contacts() CustomerContacts {
	return c.contacts
}

type DeleteCustomerCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(id kernel.UUID) (DeleteCustomerCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) ID() kernel.UUID {
	return c.id
}
