// Package salerepo persists receipts and their lines with GORM.
package salerepo

import (
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/sale"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CashierID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID     `gorm:"type:uuid;not null;index"`
	SoldAt      time.Time     `gorm:"not null;index"`
	Status      int           `gorm:"type:smallint;not null"`
	Lines       []SaleLineDTO `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (SaleDTO) TableName() string {
	return "sales"
}

type SaleLineDTO struct {
	SaleID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (SaleLineDTO) TableName() string {
	return "sale_lines"
}

func fromDomain(s *sale.Sale) SaleDTO {
	saleID := s.ID().Bytes()
	lines := make([]SaleLineDTO, 0, len(s.Lines()))
	for _, line := range s.Lines() {
		lines = append(lines, SaleLineDTO{
			SaleID:    saleID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}

	return SaleDTO{
		ID:          saleID,
		CashierID:   s.CashierID().Bytes(),
		WarehouseID: s.WarehouseID().Bytes(),
		SoldAt:      s.SoldAt(),
		Status:      int(s.Status()),
		Lines:       lines,
	}
}

func toDomain(dto SaleDTO) (*sale.Sale, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cashierID, err := kernel.UUIDFromBytes(dto.CashierID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]sale.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productID, idErr := kernel.UUIDFromBytes(l.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(l.UnitPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}
		line, lineErr := sale.NewLine(productID, l.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return sale.RestoreSale(id, cashierID, warehouseID, lines, dto.SoldAt, sale.Status(dto.Status))
}
