package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrSaveWarehouseCommandIsNotConstructed = errors.New(
		"SaveWarehouseCommand must be created via NewSaveWarehouseCommand constructor",
	)
	ErrDeleteWarehouseCommandIsNotConstructed = errors.New(
		"DeleteWarehouseCommand must be created via NewDeleteWarehouseCommand constructor",
	)
)

// SaveWarehouseCommand describes a warehouse to create or to update.
type SaveWarehouseCommand struct {
	id      kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewSaveWarehouseCommand checks the identifier only. Name and address are
// validated by the aggregate.
func NewSaveWarehouseCommand(id kernel.UUID, name, address string) (SaveWarehouseCommand, error) {
	if err := id.Validate(); err != nil {
		return SaveWarehouseCommand{}, err
	}
	return SaveWarehouseCommand{id: id, name: name, address: address, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrSaveWarehouseCommandIsNotConstructed)
}

func (c SaveWarehouseCommand) ID() kernel.UUID {
	return c.id
}

func (c SaveWarehouseCommand) Name() string {
	return c.name
}

func (c SaveWarehouseCommand) Address() string {
	return c.address
}

type DeleteWarehouseCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWarehouseCommand(id kernel.UUID) (DeleteWarehouseCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteWarehouseCommand{}, err
	}
	return DeleteWarehouseCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWarehouseCommandIsNotConstructed)
}

func (c DeleteWarehouseCommand) ID() kernel.UUID {
	return c.id
}
