package http

import (
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := toID(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func fromOptionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional omits empty strings from responses.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDeliveries(views []queries.DeliveryView) []servers.Delivery {
	response := make([]servers.Delivery, 0, len(views))
	for _, d := range views {
		response = append(response, servers.Delivery{
			Id:              d.ID.Bytes(),
			SaleId:          d.SaleID.Bytes(),
			SaleTotal:       d.SaleTotal.String(),
			Items:           d.Items,
			CashierName:     d.CashierName,
			CustomerId:      d.CustomerID.Bytes(),
			CustomerName:    d.CustomerName,
			CustomerPhone:   d.CustomerPhone,
			Address:         d.Address,
			Notes:           optional(d.Notes),
			Status:          servers.DeliveryStatus(d.Status),
			WarehouseId:     d.WarehouseID.Bytes(),
			WarehouseName:   d.WarehouseName,
			StorekeeperId:   fromOptionalID(d.StorekeeperID),
			StorekeeperName: optional(d.StorekeeperName),
			GroupId:         fromOptionalID(d.GroupID),
			VehicleInfo:     optional(d.VehicleInfo),
			CreatedAt:       d.CreatedAt,
			DeliveredAt:     d.DeliveredAt,
		})
	}
	return response
}
