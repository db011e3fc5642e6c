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

func toCustomer(c queries.CustomerView) servers.Customer {
	return servers.Customer{
		Id:        c.ID.Bytes(),
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     optional(c.Email),
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func customerContacts(body servers.CustomerInput) commands.CustomerContacts {
	return commands.CustomerContacts{
		FullName: body.FullName,
		Phone:    body.Phone,
		Email:    deref(body.Email),
		Address:  body.Address,
	}
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.ManageCustomers); err != nil {
		return err
	}

	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Customer, 0, len(customers))
	for _, c := range customers {
		response = append(response, toCustomer(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

// FindCustomerByPhone handles GET /api/v1/customers/by-phone/{phone}, used at
// the till to recognise a returning buyer.
func (s *Server) FindCustomerByPhone(ctx echo.Context, phone string) error {
	if _, err := authorize(ctx, employee.ManageCustomers); err != nil {
		return err
	}

	query, err := queries.NewFindCustomerByPhoneQuery(phone)
	if err != nil {
		return fail(ctx, err)
	}
	c, err := s.queries.FindCustomerByPhone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.ManageCustomers); err != nil {
		return err
	}

	var body servers.CustomerInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSaveCustomerCommand(id, customerContacts(body))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateCustomer handles PUT /api/v1/customers/{id}.
func (s *Server) UpdateCustomer(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageCustomers); err != nil {
		return err
	}

	var body servers.CustomerInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewSaveCustomerCommand(customerID, customerContacts(body))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (s *Server) DeleteCustomer(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageCustomers); err != nil {
		return err
	}

	customerID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
