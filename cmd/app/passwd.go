package main

import (
	"errors"
	"fmt"

	"retail/cmd"
	"retail/internal/adapters/out/postgres"
	"retail/internal/core/application/usecases/commands"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const minPasswordLength = 6

var promptRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

func newPasswdCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd <login>",
		Short: "Set a new password for an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			password, err := askPassword()
			if err != nil {
				return err
			}

			configs, _, err := opts.load()
			if err != nil {
				return err
			}
			gormDB, err := postgres.Open(configs.Database(), configs.Debug)
			if err != nil {
				return err
			}

			// Works without a signing secret configured.
			uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB, nil)
			handler := commands.NewChangePasswordCommandHandler(cmd.FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
				return uowFactory.Create()
			}))

			change, err := commands.NewChangePasswordCommand(args[0], password)
			if err != nil {
				return err
			}
			if err = handler.Handle(c.Context(), change); err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "Password of %s changed\n", args[0])
			return err
		},
	}
}

func validatePassword(s string) error {
	if len([]rune(s)) < minPasswordLength {
		return fmt.Errorf("at least %d characters", minPasswordLength)
	}
	return nil
}

func askPassword() (string, error) {
	password, err := promptRunner(promptui.Prompt{
		Label:    "New password",
		Mask:     '*',
		Validate: validatePassword,
	})
	if err != nil {
		return "", err
	}

	confirmation, err := promptRunner(promptui.Prompt{
		Label: "Repeat password",
		Mask:  '*',
	})
	if err != nil {
		return "", err
	}
	if confirmation != password {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}
