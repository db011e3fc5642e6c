// Package productrepo persists the catalogue and the per-warehouse stock
// counters with GORM.
package productrepo

import (
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Category    string          `gorm:"type:varchar(128);not null"`
	Brand       string          `gorm:"type:varchar(128)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinQuantity int             `gorm:"type:int;not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// StockDTO is one counter row. A missing row means the warehouse holds none
// of the product.
type StockDTO struct {
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity    int       `gorm:"type:int;not null;check:quantity >= 0"`
}

func (StockDTO) TableName() string {
	return "stocks"
}

func productFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Category:    p.Category(),
		Brand:       p.Brand(),
		Price:       p.Price().Decimal(),
		MinQuantity: p.MinQuantity(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, dto.Category, dto.Brand, price, dto.MinQuantity)
}

func stockFromDomain(s *inventory.Stock) StockDTO {
	return StockDTO{
		ProductID:   s.ProductID().Bytes(),
		WarehouseID: s.WarehouseID().Bytes(),
		Quantity:    s.Quantity(),
	}
}

func stockToDomain(dto StockDTO) (*inventory.Stock, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	return inventory.NewStock(productID, warehouseID, dto.Quantity)
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
