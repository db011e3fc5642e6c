package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrSaveProductCommandIsNotConstructed = errors.New(
		"SaveProductCommand must be created via NewSaveProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

type ProductDetails struct {
	Name        string
	Category    string
	Brand       string
	Price       kernel.Money
	MinQuantity int
}

type SaveProductCommand struct {
	id      kernel.UUID
	details ProductDetails

	guard guard.ConstructorGuard
}

func NewSaveProductCommand(id kernel.UUID, details ProductDetails) (SaveProductCommand, error) {
	if err := errors.Join(id.Validate(), details.Price.Validate()); err != nil {
		return SaveProductCommand{}, err
	}
	return SaveProductCommand{id: id, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

func (c SaveProductCommand) ID() kernel.UUID {
	return c.id
}

func (c SaveProductCommand) Details() ProductDetails {
	return c.details
}

type DeleteProductCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(id kernel.UUID) (DeleteProductCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ID() kernel.UUID {
	return c.id
}
