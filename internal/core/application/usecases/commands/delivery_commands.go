package commands

import (
	"errors"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrDeliveryCommandIsNotConstructed = errors.New(
		"DeliveryCommand must be created via NewDeliveryCommand constructor",
	)
	ErrCreateDeliveryGroupCommandIsNotConstructed = errors.New(
		"CreateDeliveryGroupCommand must be created via NewCreateDeliveryGroupCommand constructor",
	)
	ErrGroupCommandIsNotConstructed = errors.New(
		"GroupCommand must be created via NewGroupCommand constructor",
	)
)

// DeliveryCommand is an operator action on a single delivery: take,
// complete or cancel.
type DeliveryCommand struct {
	actor      Actor
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliveryCommand(actor Actor, deliveryID kernel.UUID) (DeliveryCommand, error) {
	if err := errors.Join(actor.Validate(), deliveryID.Validate()); err != nil {
		return DeliveryCommand{}, err
	}
	return DeliveryCommand{actor: actor, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeliveryCommandIsNotConstructed)
}

func (c DeliveryCommand) Actor() Actor {
	return c.actor
}

func (c DeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CreateDeliveryGroupCommand opens a van group for the acting storekeeper in
// their warehouse.
type CreateDeliveryGroupCommand struct {
	actor       Actor
	groupID     kernel.UUID
	vehicleInfo string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryGroupCommand(actor Actor, groupID kernel.UUID, vehicleInfo string) (CreateDeliveryGroupCommand, error) {
	var vehicleErr error
	if strings.TrimSpace(vehicleInfo) == "" {
		vehicleErr = errs.NewValueIsRequiredError("vehicle info")
	}
	if err := errors.Join(actor.Validate(), groupID.Validate(), vehicleErr); err != nil {
		return CreateDeliveryGroupCommand{}, err
	}

	return CreateDeliveryGroupCommand{
		actor:       actor,
		groupID:     groupID,
		vehicleInfo: vehicleInfo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryGroupCommandIsNotConstructed)
}

func (c CreateDeliveryGroupCommand) Actor() Actor {
	return c.actor
}

func (c CreateDeliveryGroupCommand) GroupID() kernel.UUID {
	return c.groupID
}

func (c CreateDeliveryGroupCommand) VehicleInfo() string {
	return c.vehicleInfo
}

// GroupCommand is an operator action on a van group. DeliveryID is set only
// when loading a delivery.
type GroupCommand struct {
	actor      Actor
	groupID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGroupCommand(actor Actor, groupID kernel.UUID) (GroupCommand, error) {
	if err := errors.Join(actor.Validate(), groupID.Validate()); err != nil {
		return GroupCommand{}, err
	}
	return GroupCommand{actor: actor, groupID: groupID, guard: guard.NewConstructorGuard()}, nil
}

func NewAddDeliveryToGroupCommand(actor Actor, groupID, deliveryID kernel.UUID) (GroupCommand, error) {
	cmd, err := NewGroupCommand(actor, groupID)
	if err = errors.Join(err, deliveryID.Validate()); err != nil {
		return GroupCommand{}, err
	}
	cmd.deliveryID = deliveryID
	return cmd, nil
}

func (c GroupCommand) Validate() error {
	return c.guard.Validate(ErrGroupCommandIsNotConstructed)
}

func (c GroupCommand) Actor() Actor {
	return c.actor
}

func (c GroupCommand) GroupID() kernel.UUID {
	return c.groupID
}

func (c GroupCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
