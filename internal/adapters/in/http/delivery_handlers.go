package http

import (
	"context"
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDeliveries handles GET /api/v1/deliveries: the delivery board of a
// warehouse, pending work first.
func (s *Server) GetDeliveries(ctx echo.Context, params servers.GetDeliveriesParams) error {
	actor, err := authorize(ctx, employee.ViewDeliveries)
	if err != nil {
		return err
	}

	warehouseID, err := toOptionalID(params.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	storekeeperID, err := toOptionalID(params.StorekeeperId)
	if err != nil {
		return fail(ctx, err)
	}
	f := queries.DeliveryFilter{
		WarehouseID:   scopeWarehouse(actor, warehouseID),
		StorekeeperID: storekeeperID,
	}
	if params.Status != nil {
		status, err := delivery.ParseStatus(string(*params.Status))
		if err != nil {
			return fail(ctx, err)
		}
		f.Status = &status
	}

	query, err := queries.NewGetDeliveriesQuery(f)
	if err != nil {
		return fail(ctx, err)
	}
	deliveries, err := s.queries.GetDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveries(deliveries))
}

type deliveryHandler interface {
	Handle(ctx context.Context, cmd commands.DeliveryCommand) error
}

func (s *Server) changeDelivery(ctx echo.Context, id servers.ID, p employee.Permission, h deliveryHandler) error {
	actor, err := authorize(ctx, p)
	if err != nil {
		return err
	}

	deliveryID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewDeliveryCommand(actor, deliveryID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = h.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TakeDelivery handles POST /api/v1/deliveries/{id}/take.
func (s *Server) TakeDelivery(ctx echo.Context, id servers.ID) error {
	return s.changeDelivery(ctx, id, employee.WorkDeliveries, s.commands.TakeDelivery)
}

// CompleteDelivery handles POST /api/v1/deliveries/{id}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, id servers.ID) error {
	return s.changeDelivery(ctx, id, employee.WorkDeliveries, s.commands.CompleteDelivery)
}

// CancelDelivery handles POST /api/v1/deliveries/{id}/cancel.
func (s *Server) CancelDelivery(ctx echo.Context, id servers.ID) error {
	return s.changeDelivery(ctx, id, employee.CancelDeliveries, s.commands.CancelDelivery)
}

// GetDeliveryGroups handles GET /api/v1/delivery-groups.
func (s *Server) GetDeliveryGroups(ctx echo.Context, params servers.GetDeliveryGroupsParams) error {
	actor, err := authorize(ctx, employee.ViewDeliveries)
	if err != nil {
		return err
	}

	storekeeperID, err := toOptionalID(params.StorekeeperId)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetDeliveryGroupsQuery(storekeeperID, scopeWarehouse(actor, nil))
	if err != nil {
		return fail(ctx, err)
	}

	groups, err := s.queries.GetDeliveryGroups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.DeliveryGroup, 0, len(groups))
	for _, g := range groups {
		response = append(response, servers.DeliveryGroup{
			Id:              g.ID.Bytes(),
			StorekeeperId:   g.StorekeeperID.Bytes(),
			StorekeeperName: g.StorekeeperName,
			WarehouseId:     g.WarehouseID.Bytes(),
			VehicleInfo:     g.VehicleInfo,
			Status:          servers.DeliveryGroupStatus(g.Status),
			DeliveryCount:   g.DeliveryCount,
			CreatedAt:       g.CreatedAt,
			CompletedAt:     g.CompletedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryGroup handles POST /api/v1/delivery-groups. The group belongs
// to the storekeeper who opens it.
func (s *Server) CreateDeliveryGroup(ctx echo.Context) error {
	actor, err := authorize(ctx, employee.WorkDeliveries)
	if err != nil {
		return err
	}

	var body servers.DeliveryGroupInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryGroupCommand(actor, id, body.VehicleInfo)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CreateDeliveryGroup.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// AddDeliveryToGroup handles POST /api/v1/delivery-groups/{id}/deliveries.
func (s *Server) AddDeliveryToGroup(ctx echo.Context, id servers.ID) error {
	actor, err := authorize(ctx, employee.WorkDeliveries)
	if err != nil {
		return err
	}

	var body servers.GroupDeliveryInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	groupID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	deliveryID, err := toID(body.DeliveryId)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewAddDeliveryToGroupCommand(actor, groupID, deliveryID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.AddDeliveryToGroup.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDeliveryGroup handles POST /api/v1/delivery-groups/{id}/complete.
func (s *Server) CompleteDeliveryGroup(ctx echo.Context, id servers.ID) error {
	actor, err := authorize(ctx, employee.WorkDeliveries)
	if err != nil {
		return err
	}

	groupID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewGroupCommand(actor, groupID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CompleteDeliveryGroup.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetGroupDeliveries handles GET /api/v1/delivery-groups/{id}/deliveries in
// loading order.
func (s *Server) GetGroupDeliveries(ctx echo.Context, id servers.ID) error {
	actor, err := authorize(ctx, employee.ViewDeliveries)
	if err != nil {
		return err
	}

	groupID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetGroupDeliveriesQuery(groupID)
	if err != nil {
		return fail(ctx, err)
	}
	deliveries, err := s.queries.GetGroupDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	// A group only ever holds deliveries of its own warehouse.
	for _, d := range deliveries {
		if !actor.CanAccess(d.WarehouseID) {
			return fail(ctx, commands.ErrOtherWarehouse)
		}
	}

	return ctx.JSON(http.StatusOK, toDeliveries(deliveries))
}
