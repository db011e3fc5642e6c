package commands

import (
	"errors"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
)

var ErrOtherWarehouse = errs.NewOperationNotAllowedError("the object belongs to another warehouse")

// Actor is the signed-in employee on whose behalf a command runs.
type Actor struct {
	id          kernel.UUID
	role        employee.Role
	warehouseID kernel.UUID
}

func NewActor(id kernel.UUID, role employee.Role, warehouseID kernel.UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate(), warehouseID.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, warehouseID: warehouseID}, nil
}

func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() employee.Role {
	return a.role
}

func (a Actor) WarehouseID() kernel.UUID {
	return a.warehouseID
}

func (a Actor) IsAdmin() bool {
	return a.role == employee.Admin
}

// CanAccess reports whether the actor may touch objects of a warehouse.
// Admins work across warehouses, everyone else only in their own.
func (a Actor) CanAccess(warehouseID kernel.UUID) bool {
	return a.IsAdmin() || a.warehouseID.IsEqual(warehouseID)
}

func (a Actor) checkAccess(warehouseID kernel.UUID) error {
	if !a.CanAccess(warehouseID) {
		return ErrOtherWarehouse
	}
	return nil
}
