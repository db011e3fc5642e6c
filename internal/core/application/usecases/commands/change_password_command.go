package commands

import (
	"errors"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand resets the password of an account. It is issued by
// an operator with shell access, so the old password is not asked for.
type ChangePasswordCommand struct {
	login    string
	password string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(login, password string) (ChangePasswordCommand, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return ChangePasswordCommand{}, errs.NewValueIsRequiredError("login")
	}
	return ChangePasswordCommand{login: login, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) Login() string {
	return c.login
}

func (c ChangePasswordCommand) Password() string {
	return c.password
}
