package http

import (
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/services"
	"retail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/v1/sales. The sale is rung up in the cashier's
// own warehouse.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := authorize(ctx, employee.Checkout)
	if err != nil {
		return err
	}

	var body servers.CheckoutRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cart := make([]services.CartLine, 0, len(body.Lines))
	for _, line := range body.Lines {
		productID, err := toID(line.ProductId)
		if err != nil {
			return fail(ctx, err)
		}
		cart = append(cart, services.CartLine{ProductID: productID, Quantity: line.Quantity})
	}

	var shipping *commands.DeliveryRequest
	if body.Delivery != nil {
		shipping = &commands.DeliveryRequest{
			DeliveryID: kernel.NewUUID(),
			Phone:      body.Delivery.Phone,
			Address:    body.Delivery.Address,
			Notes:      deref(body.Delivery.Notes),
		}
	}

	cmd, err := commands.NewCheckoutCommand(actor, kernel.NewUUID(), cart, shipping)
	if err != nil {
		return fail(ctx, err)
	}
	receipt, err := s.commands.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Receipt{
		SaleId:     receipt.SaleID.Bytes(),
		Total:      receipt.Total.String(),
		CustomerId: fromOptionalID(receipt.CustomerID),
		DeliveryId: fromOptionalID(receipt.DeliveryID),
	})
}

// GetSales handles GET /api/v1/sales, newest first.
func (s *Server) GetSales(ctx echo.Context, params servers.GetSalesParams) error {
	actor, err := authorize(ctx, employee.ViewSales)
	if err != nil {
		return err
	}

	warehouseID, err := toOptionalID(params.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetSalesReportQuery(scopeWarehouse(actor, warehouseID))
	if err != nil {
		return fail(ctx, err)
	}

	sales, err := s.queries.GetSalesReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Sale, 0, len(sales))
	for _, sl := range sales {
		response = append(response, servers.Sale{
			Id:            sl.ID.Bytes(),
			SoldAt:        sl.SoldAt,
			CashierId:     sl.CashierID.Bytes(),
			CashierName:   sl.CashierName,
			WarehouseId:   sl.WarehouseID.Bytes(),
			WarehouseName: sl.WarehouseName,
			Items:         sl.Items,
			Total:         sl.Total.String(),
			Status:        servers.SaleStatus(sl.Status),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CancelSale handles POST /api/v1/sales/{id}/cancel and returns the goods to
// stock.
func (s *Server) CancelSale(ctx echo.Context, id servers.ID) error {
	actor, err := authorize(ctx, employee.CancelSales)
	if err != nil {
		return err
	}

	saleID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewCancelSaleCommand(actor, saleID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CancelSale.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
