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

// GetProducts handles GET /api/v1/products with quantities of one warehouse
// or, for admins without a filter, of the whole chain.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	actor, err := authorize(ctx, employee.ViewCatalog)
	if err != nil {
		return err
	}

	warehouseID, err := toOptionalID(params.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetProductsQuery(scopeWarehouse(actor, warehouseID))
	if err != nil {
		return fail(ctx, err)
	}

	products, err := s.queries.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Product, 0, len(products))
	for _, p := range products {
		response = append(response, servers.Product{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Category:    p.Category,
			Brand:       p.Brand,
			Price:       p.Price.String(),
			MinQuantity: p.MinQuantity,
			Quantity:    p.Quantity,
			Low:         p.IsLow(),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetLowStock handles GET /api/v1/products/low-stock.
func (s *Server) GetLowStock(ctx echo.Context, params servers.GetLowStockParams) error {
	actor, err := authorize(ctx, employee.ViewCatalog)
	if err != nil {
		return err
	}

	warehouseID, err := toOptionalID(params.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetLowStockQuery(scopeWarehouse(actor, warehouseID))
	if err != nil {
		return fail(ctx, err)
	}

	items, err := s.queries.GetLowStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.LowStockItem, 0, len(items))
	for _, item := range items {
		response = append(response, servers.LowStockItem{
			ProductId:     item.ProductID.Bytes(),
			ProductName:   item.ProductName,
			Category:      item.Category,
			WarehouseId:   item.WarehouseID.Bytes(),
			WarehouseName: item.WarehouseName,
			Quantity:      item.Quantity,
			MinQuantity:   item.MinQuantity,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

func productDetails(body servers.ProductInput) (commands.ProductDetails, error) {
	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return commands.ProductDetails{}, err
	}
	details := commands.ProductDetails{
		Name:     body.Name,
		Category: body.Category,
		Brand:    deref(body.Brand),
		Price:    price,
	}
	if body.MinQuantity != nil {
		details.MinQuantity = *body.MinQuantity
	}
	return details, nil
}

// CreateProduct handles POST /api/v1/products. Storekeepers may add
// products but only admins edit or remove them.
func (s *Server) CreateProduct(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.AddProducts); err != nil {
		return err
	}

	var body servers.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	details, err := productDetails(body)
	if err != nil {
		return fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSaveProductCommand(id, details)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageCatalog); err != nil {
		return err
	}

	var body servers.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	details, err := productDetails(body)
	if err != nil {
		return fail(ctx, err)
	}

	productID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewSaveProductCommand(productID, details)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) DeleteProduct(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageCatalog); err != nil {
		return err
	}

	productID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetStock handles PUT /api/v1/stock after a stocktake.
func (s *Server) SetStock(ctx echo.Context) error {
	actor, err := authorize(ctx, employee.ManageStock)
	if err != nil {
		return err
	}

	var body servers.StockInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := toID(body.ProductId)
	if err != nil {
		return fail(ctx, err)
	}
	warehouseID, err := toID(body.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewSetStockCommand(actor, productID, warehouseID, body.Quantity)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.SetStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
