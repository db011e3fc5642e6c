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

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(ctx echo.Context, params servers.GetEmployeesParams) error {
	actor, err := authorize(ctx, employee.ManageEmployees)
	if err != nil {
		return err
	}

	warehouseID, err := toOptionalID(params.WarehouseId)
	if err != nil {
		return fail(ctx, err)
	}
	query, err := queries.NewGetEmployeesQuery(scopeWarehouse(actor, warehouseID))
	if err != nil {
		return fail(ctx, err)
	}

	staff, err := s.queries.GetEmployees.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]servers.Employee, 0, len(staff))
	for _, e := range staff {
		response = append(response, servers.Employee{
			Id:            e.ID.Bytes(),
			Login:         e.Login,
			FullName:      e.FullName,
			Role:          servers.Role(e.Role),
			WarehouseId:   e.WarehouseID.Bytes(),
			WarehouseName: e.WarehouseName,
			Phone:         optional(e.Phone),
			Email:         optional(e.Email),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

func employeeProfile(body servers.EmployeeInput) (commands.EmployeeProfile, error) {
	role, err := employee.ParseRole(string(body.Role))
	if err != nil {
		return commands.EmployeeProfile{}, err
	}
	warehouseID, err := toID(body.WarehouseId)
	if err != nil {
		return commands.EmployeeProfile{}, err
	}
	return commands.EmployeeProfile{
		Login:       body.Login,
		Password:    deref(body.Password),
		FullName:    body.FullName,
		Role:        role,
		WarehouseID: warehouseID,
		Phone:       deref(body.Phone),
		Email:       deref(body.Email),
	}, nil
}

// RegisterEmployee handles POST /api/v1/employees.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	if _, err := authorize(ctx, employee.ManageEmployees); err != nil {
		return err
	}

	var body servers.EmployeeInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	profile, err := employeeProfile(body)
	if err != nil {
		return fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSaveEmployeeCommand(id, profile)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.RegisterEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// UpdateEmployee handles PUT /api/v1/employees/{id}.
func (s *Server) UpdateEmployee(ctx echo.Context, id servers.ID) error {
	if _, err := authorize(ctx, employee.ManageEmployees); err != nil {
		return err
	}

	var body servers.EmployeeInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	profile, err := employeeProfile(body)
	if err != nil {
		return fail(ctx, err)
	}

	employeeID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewSaveEmployeeCommand(employeeID, profile)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.UpdateEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteEmployee handles DELETE /api/v1/employees/{id}.
func (s *Server) DeleteEmployee(ctx echo.Context, id servers.ID) error {
	actor, err := authorize(ctx, employee.ManageEmployees)
	if err != nil {
		return err
	}

	employeeID, err := toID(id)
	if err != nil {
		return fail(ctx, err)
	}
	cmd, err := commands.NewDeleteEmployeeCommand(actor, employeeID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.commands.DeleteEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
