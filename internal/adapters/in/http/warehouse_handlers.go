package http

import (
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetWarehouses handles GET /api/v1/warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.ViewCatalog); err != nil {
		return err
	}

	warehouses, err := s.queries.GetWarehouses.Handle(ctx.Request().Context(), queries.NewGetWarehousesQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		response = append(response, servers.Warehouse{
			Id:            w.ID.Bytes(),
			Name:          w.Name,
			Address:       w.Address,
			EmployeeCount: w.EmployeeCount,
			StockUnits:    w.StockUnits,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.ManageWarehouses); err != nil {
		return err
	}

	var body servers.WarehouseInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSaveWarehouseCommand(id, body.Name, body.Address)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CreateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateWarehouse handles PUT /api/v1/warehouses/{id}.
func (s *Server) UpdateWarehouse(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageWarehouses); err != nil {
		return err
	}

	var body servers.WarehouseInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	warehouseID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewSaveWarehouseCommand(warehouseID, body.Name, body.Address)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.UpdateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWarehouse handles DELETE /api/v1/warehouses/{id}.
func (s *Server) DeleteWarehouse(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageWarehouses); err != nil {
		return err
	}

	warehouseID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewDeleteWarehouseCommand(warehouseID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.DeleteWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
