package commands

import (
	"errors"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrSaveEmployeeCommandIsNotConstructed = errors.New(
		"SaveEmployeeCommand must be created via NewSaveEmployeeCommand constructor",
	)
	ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
		"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
	)
)

// EmployeeProfile is the editable part of an account as entered on the
// staff form.
type EmployeeProfile struct {
	Login       string
	Password    string
	FullName    string
	Role        employee.Role
	WarehouseID kernel.UUID
	Phone       string
	Email       string
}

// SaveEmployeeCommand registers or edits an account. On edit an empty
// password keeps the current one.
type SaveEmployeeCommand struct {
	id      kernel.UUID
	profile EmployeeProfile

	guard guard.ConstructorGuard
}

func NewSaveEmployeeCommand(id kernel.UUID, profile EmployeeProfile) (SaveEmployeeCommand, error) {
	if err := errors.Join(id.Validate(), profile.Role.Validate()); err != nil {
		return SaveEmployeeCommand{}, err
	}
	return SaveEmployeeCommand{id: id, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrSaveEmployeeCommandIsNotConstructed)
}

func (c SaveEmployeeCommand) ID() kernel.UUID {
	return c.id
}

func (c SaveEmployeeCommand) Profile() EmployeeProfile {
	return c.profile
}

type DeleteEmployeeCommand struct {
	actor Actor
	id    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteEmployeeCommand(actor Actor, id kernel.UUID) (DeleteEmployeeCommand, error) {
	if err := errors.Join(actor.Validate(), id.Validate()); err != nil {
		return DeleteEmployeeCommand{}, err
	}
	return DeleteEmployeeCommand{actor: actor, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

func (c DeleteEmployeeCommand) Actor() Actor {
	return c.actor
}

func (c DeleteEmployeeCommand) ID() kernel.UUID {
	return c.id
}
