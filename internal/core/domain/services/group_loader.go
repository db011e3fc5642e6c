package services

import (
	"errors"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
)

var (
	// ErrForeignDelivery is returned when a storekeeper tries to load a
	// delivery assigned to somebody else.
	ErrForeignDelivery = errors.New("delivery is assigned to another storekeeper")

	// ErrWarehouseMismatch is returned when the delivery ships from a
	// different warehouse than the group.
	ErrWarehouseMismatch = errors.New("delivery and group belong to different warehouses")
)

// GroupLoader puts deliveries into van groups.
//
// Business rules:
//   - the delivery must be assigned to the group's storekeeper
//   - the delivery and the group must belong to the same warehouse
//   - the group must be preparing and must not already hold the delivery
//   - loading starts the dispatch of the delivery
//
// Either both aggregates change or neither does.
type GroupLoader struct{}

func NewGroupLoader() GroupLoader {
	return GroupLoader{}
}

func (GroupLoader) Load(g *deliverygroup.Group, d *delivery.Delivery) error {
	if err := errors.Join(g.Validate(), d.Validate()); err != nil {
		return err
	}

	if !d.IsAssignedTo(g.Storekeeper()) {
		return ErrForeignDelivery
	}
	if !d.WarehouseID().IsEqual(g.WarehouseID()) {
		return ErrWarehouseMismatch
	}
	if _, err := d.Status().StartDispatch(); err != nil {
		return err
	}

	if err := g.AddDelivery(d.ID()); err != nil {
		return err
	}
	return d.StartDispatch()
}
