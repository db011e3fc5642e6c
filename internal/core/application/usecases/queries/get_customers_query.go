package queries

import (
	"errors"
	"strings"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
	ErrFindCustomerByPhoneQueryIsNotConstructed = errors.New(
		"FindCustomerByPhoneQuery must be created via NewFindCustomerByPhoneQuery constructor",
	)
)

type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

type FindCustomerByPhoneQuery struct {
	phone string
	guard guard.ConstructorGuard
}

func NewFindCustomerByPhoneQuery(phone string) (FindCustomerByPhoneQuery, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return FindCustomerByPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}
	return FindCustomerByPhoneQuery{phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (q FindCustomerByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrFindCustomerByPhoneQueryIsNotConstructed)
}

func (q FindCustomerByPhoneQuery) Phone() string {
	return q.phone
}

type CustomerView struct {
	ID        kernel.UUID
	FullName  string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
