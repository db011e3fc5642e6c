package sale

import (
	"errors"
	"slices"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale constructor")
	ErrSaleAlreadyCancelled = errors.New("sale is already cancelled")
	ErrSaleHasNoLines       = errs.NewValueIsRequiredError("sale lines")
)

type Sale struct {
	id          kernel.UUID
	cashierID   kernel.UUID
	warehouseID kernel.UUID
	lines       []Line
	soldAt      time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewSale records a completed receipt. Lines for the same product are merged
// into the first one, keeping its unit price.
func NewSale(id, cashierID, warehouseID kernel.UUID, lines []Line, soldAt time.Time) (*Sale, error) {
	var linesErr error
	if len(lines) == 0 {
		linesErr = ErrSaleHasNoLines
	}
	if err := errors.Join(id.Validate(), cashierID.Validate(), warehouseID.Validate(), linesErr); err != nil {
		return nil, err
	}

	merged := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.unitPrice.Validate() != nil {
			return nil, errs.NewValueIsInvalidError("sale line must be created via NewLine")
		}
		i := slices.IndexFunc(merged, func(m Line) bool { return m.productID.IsEqual(l.productID) })
		if i < 0 {
			merged = append(merged, l)
			continue
		}
		merged[i].quantity += l.quantity
	}

	return &Sale{
		id:          id,
		cashierID:   cashierID,
		warehouseID: warehouseID,
		lines:       merged,
		soldAt:      soldAt,
		status:      Completed,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreSale rebuilds a sale from persistence.
func RestoreSale(
	id, cashierID, warehouseID kernel.UUID,
	lines []Line,
	soldAt time.Time,
	status Status,
) (*Sale, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	s, err := NewSale(id, cashierID, warehouseID, lines, soldAt)
	if err != nil {
		return nil, err
	}
	s.status = status
	return s, nil
}

func (s *Sale) Validate() error {
	if s == nil {
		return ErrSaleIsNotConstructed
	}
	return s.guard.Validate(ErrSaleIsNotConstructed)
}

func (s *Sale) ID() kernel.UUID {
	return s.id
}

func (s *Sale) CashierID() kernel.UUID {
	return s.cashierID
}

func (s *Sale) WarehouseID() kernel.UUID {
	return s.warehouseID
}

func (s *Sale) Lines() []Line {
	return slices.Clone(s.lines)
}

func (s *Sale) SoldAt() time.Time {
	return s.soldAt
}

func (s *Sale) Status() Status {
	return s.status
}

func (s *Sale) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range s.lines {
		total = total.Add(l.Total())
	}
	return total
}

// Cancel voids the receipt. Restocking is the caller's job.
func (s *Sale) Cancel() error {
	if s.status == Cancelled {
		return ErrSaleAlreadyCancelled
	}
	s.status = Cancelled
	return nil
}
