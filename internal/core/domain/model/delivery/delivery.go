package delivery

import (
	"errors"
	"strings"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root of the delivery workflow.
//
// Invariants:
//   - sale, customer and warehouse identifiers are valid
//   - the address is not blank
//   - a storekeeper is assigned exactly when the status requires one
//     (see Status.ValidateCanHaveStorekeeper)
//   - deliveredAt is set only in the Delivered status
type Delivery struct {
	id            kernel.UUID
	saleID        kernel.UUID
	customerID    kernel.UUID
	warehouseID   kernel.UUID
	address       string
	notes         string
	status        Status
	storekeeperID *kernel.UUID
	createdAt     time.Time
	deliveredAt   *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a pending delivery for a sale.
func NewDelivery(
	id, saleID, customerID, warehouseID kernel.UUID,
	address, notes string,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:    Pending,
		notes:     strings.TrimSpace(notes),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&d.id, id),
		setID(&d.saleID, saleID),
		setID(&d.customerID, customerID),
		setID(&d.warehouseID, warehouseID),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persistence, checking the
// status/assignee invariants.
func RestoreDelivery(
	id, saleID, customerID, warehouseID kernel.UUID,
	address, notes string,
	status Status,
	storekeeperID *kernel.UUID,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, saleID, customerID, warehouseID, address, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveStorekeeper(storekeeperID != nil); err != nil {
		return nil, err
	}
	if storekeeperID != nil {
		if err = storekeeperID.Validate(); err != nil {
			return nil, err
		}
	}
	if (deliveredAt != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidError("delivered date must be set only for delivered deliveries")
	}

	d.status = status
	d.storekeeperID = storekeeperID
	d.deliveredAt = deliveredAt
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) SaleID() kernel.UUID {
	return d.saleID
}

func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

func (d *Delivery) WarehouseID() kernel.UUID {
	return d.warehouseID
}

func (d *Delivery) Address() string {
	return d.address
}

func (d *Delivery) Notes() string {
	return d.notes
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Storekeeper() *kernel.UUID {
	return d.storekeeperID
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsAssignedTo reports whether the given storekeeper owns the delivery.
func (d *Delivery) IsAssignedTo(storekeeperID kernel.UUID) bool {
	return d.storekeeperID != nil && d.storekeeperID.IsEqual(storekeeperID)
}

// Assign hands a pending delivery to a storekeeper.
func (d *Delivery) Assign(storekeeperID kernel.UUID) error {
	if err := storekeeperID.Validate(); err != nil {
		return err
	}

	next, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = next
	d.storekeeperID = &storekeeperID
	return nil
}

// StartDispatch marks an assigned delivery as loaded into a van.
func (d *Delivery) StartDispatch() error {
	next, err := d.status.StartDispatch()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

// Complete records the hand-over to the customer.
func (d *Delivery) Complete(at time.Time) error {
	next, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = next
	d.deliveredAt = &at
	return nil
}

// Cancel abandons the delivery. The storekeeper, if any, is kept for history.
func (d *Delivery) Cancel() error {
	next, err := d.status.Cancel()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Delivery) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
