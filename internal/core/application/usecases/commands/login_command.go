package commands

import (
	"errors"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand carries the credentials typed on the sign-in form.
type LoginCommand struct {
	login    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(login, password string) (LoginCommand, error) {
	login = strings.TrimSpace(login)

	var err error
	if login == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("login"))
	}
	if password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{login: login, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Login() string {
	return c.login
}

func (c LoginCommand) Password() string {
	return c.password
}
