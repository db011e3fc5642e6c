package employee

import (
	"fmt"
	"strings"

	"retail/internal/pkg/errs"
)

type Role int

const (
	UnknownRole Role = iota
	Admin
	Cashier
	Storekeeper
)

var roleNames = map[Role]string{
	Admin:       "admin",
	Cashier:     "cashier",
	Storekeeper: "storekeeper",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a known role", r))
	}
	return nil
}

type Permission string

const (
	ManageWarehouses Permission = "warehouses.manage"
	ManageEmployees  Permission = "employees.manage"
	ManageCatalog    Permission = "catalog.manage"
	AddProducts      Permission = "catalog.add"
	ViewCatalog      Permission = "catalog.view"
	ManageStock      Permission = "stock.manage"
	ManageCustomers  Permission = "customers.manage"
	Checkout         Permission = "sales.checkout"
	ViewSales        Permission = "sales.view"
	CancelSales      Permission = "sales.cancel"
	WorkDeliveries   Permission = "deliveries.work"
	CancelDeliveries Permission = "deliveries.cancel"
	ViewDeliveries   Permission = "deliveries.view"
)

var rolePermissions = map[Role][]Permission{
	Cashier:     {Checkout, ViewCatalog, ManageCustomers},
	Storekeeper: {ViewCatalog, AddProducts, ManageStock, WorkDeliveries, ViewDeliveries},
}

// Can reports whether the role grants the permission. Admins are granted
// everything.
func (r Role) Can(p Permission) bool {
	if r == Admin {
		return true
	}
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
