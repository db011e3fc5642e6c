package deliverygroup

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")
	ErrGroupIsClosed         = errors.New("deliveries can only be added while the group is preparing")
	ErrDeliveryAlreadyLoaded = errors.New("delivery is already in the group")
)

// Group is a batch of deliveries dispatched together in one vehicle by one
// storekeeper of one warehouse.
type Group struct {
	id            kernel.UUID
	storekeeperID kernel.UUID
	warehouseID   kernel.UUID
	vehicleInfo   string
	status        Status
	deliveryIDs   []kernel.UUID
	createdAt     time.Time
	completedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewGroup opens an empty group in Preparing status.
func NewGroup(id, storekeeperID, warehouseID kernel.UUID, vehicleInfo string, createdAt time.Time) (*Group, error) {
	g := &Group{
		status:      Preparing,
		deliveryIDs: make([]kernel.UUID, 0),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		storekeeperID.Validate(),
		warehouseID.Validate(),
		g.setVehicleInfo(vehicleInfo),
	); err != nil {
		return nil, err
	}

	g.id = id
	g.storekeeperID = storekeeperID
	g.warehouseID = warehouseID
	return g, nil
}

// RestoreGroup rebuilds a group from persistence.
func RestoreGroup(
	id, storekeeperID, warehouseID kernel.UUID,
	vehicleInfo string,
	status Status,
	deliveryIDs []kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
) (*Group, error) {
	g, err := NewGroup(id, storekeeperID, warehouseID, vehicleInfo, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (completedAt != nil) != (status == Completed) {
		return nil, errs.NewValueIsInvalidError("completed date must be set only for completed groups")
	}
	for _, id := range deliveryIDs {
		if err = id.Validate(); err != nil {
			return nil, err
		}
	}

	g.status = status
	g.deliveryIDs = append(g.deliveryIDs, deliveryIDs...)
	g.completedAt = completedAt
	return g, nil
}

func (g *Group) Validate() error {
	if g == nil {
		return ErrGroupIsNotConstructed
	}
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

func (g *Group) ID() kernel.UUID {
	return g.id
}

func (g *Group) Storekeeper() kernel.UUID {
	return g.storekeeperID
}

func (g *Group) WarehouseID() kernel.UUID {
	return g.warehouseID
}

func (g *Group) VehicleInfo() string {
	return g.vehicleInfo
}

func (g *Group) Status() Status {
	return g.status
}

func (g *Group) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Group) CompletedAt() *time.Time {
	return g.completedAt
}

// Deliveries returns a copy of the loaded delivery identifiers in loading order.
func (g *Group) Deliveries() []kernel.UUID {
	return slices.Clone(g.deliveryIDs)
}

func (g *Group) Contains(deliveryID kernel.UUID) bool {
	return slices.ContainsFunc(g.deliveryIDs, deliveryID.IsEqual)
}

// AddDelivery loads a delivery. Only preparing groups accept deliveries.
func (g *Group) AddDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if g.status != Preparing {
		return ErrGroupIsClosed
	}
	if g.Contains(deliveryID) {
		return fmt.Errorf("%w: %s", ErrDeliveryAlreadyLoaded, deliveryID)
	}
	g.deliveryIDs = append(g.deliveryIDs, deliveryID)
	return nil
}

// Complete closes the group. Its deliveries keep their own status.
func (g *Group) Complete(at time.Time) error {
	next, err := g.status.Complete()
	if err != nil {
		return err
	}
	g.status = next
	g.completedAt = &at
	return nil
}

func (g *Group) setVehicleInfo(info string) error {
	info = strings.TrimSpace(info)
	if info == "" {
		return errs.NewValueIsRequiredError("vehicle info")
	}
	g.vehicleInfo = info
	return nil
}
