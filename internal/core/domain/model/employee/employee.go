package employee

import (
	"errors"
	"fmt"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// RootAdminLogin is the seeded administrator that cannot be edited or
// removed through the API.
const RootAdminLogin = "admin"

const MinPasswordLength = 6

var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

type Employee struct {
	id           kernel.UUID
	login        string
	passwordHash string
	fullName     string
	role         Role
	phone        string
	email        string
	warehouseID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewEmployee registers an employee and hashes the password.
func NewEmployee(
	id kernel.UUID,
	login, password, fullName string,
	role Role,
	warehouseID kernel.UUID,
	phone, email string,
) (*Employee, error) {
	e := &Employee{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		e.Update(login, fullName, role, warehouseID, phone, email),
		validatePassword(password),
	); err != nil {
		return nil, err
	}
	if err := e.ChangePassword(password); err != nil {
		return nil, err
	}

	e.id = id
	return e, nil
}

// RestoreEmployee rebuilds an employee from persistence with an already
// hashed password.
func RestoreEmployee(
	id kernel.UUID,
	login, passwordHash, fullName string,
	role Role,
	warehouseID kernel.UUID,
	phone, email string,
) (*Employee, error) {
	e := &Employee{guard: guard.NewConstructorGuard()}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	if err := errors.Join(
		id.Validate(),
		e.Update(login, fullName, role, warehouseID, phone, email),
	); err != nil {
		return nil, err
	}

	e.id = id
	e.passwordHash = passwordHash
	return e, nil
}

func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

func (e *Employee) ID() kernel.UUID {
	return e.id
}

func (e *Employee) Login() string {
	return e.login
}

func (e *Employee) PasswordHash() string {
	return e.passwordHash
}

func (e *Employee) FullName() string {
	return e.fullName
}

func (e *Employee) Role() Role {
	return e.role
}

func (e *Employee) Phone() string {
	return e.phone
}

func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) WarehouseID() kernel.UUID {
	return e.warehouseID
}

func (e *Employee) IsRootAdmin() bool {
	return e.login == RootAdminLogin
}

func (e *Employee) Can(p Permission) bool {
	return e.role.Can(p)
}

// Update replaces the profile. The password is untouched.
func (e *Employee) Update(login, fullName string, role Role, warehouseID kernel.UUID, phone, email string) error {
	login, fullName = strings.TrimSpace(login), strings.TrimSpace(fullName)

	var err error
	if login == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("login"))
	}
	if fullName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("full name"))
	}
	if roleErr := role.Validate(); roleErr != nil {
		err = errors.Join(err, roleErr)
	}
	if whErr := warehouseID.Validate(); whErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("warehouse", whErr))
	}
	if err != nil {
		return err
	}

	e.login = login
	e.fullName = fullName
	e.role = role
	e.warehouseID = warehouseID
	e.phone = strings.TrimSpace(phone)
	e.email = strings.TrimSpace(email)
	return nil
}

func (e *Employee) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	e.passwordHash = string(hash)
	return nil
}

func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.passwordHash), []byte(password)) == nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters long", MinPasswordLength),
		)
	}
	return nil
}
