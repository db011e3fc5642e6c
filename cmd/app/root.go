package main

import (
	"log/slog"

	"retail/cmd"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "retail",
		Short:         "Appliance store back office: API server and admin tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", cmd.DefaultConfigFile, "connection settings file")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newReportCommand(opts),
		newPasswdCommand(opts),
	)
	return root
}

func (o *rootOptions) load() (cmd.Config, *slog.Logger, error) {
	configs, err := cmd.LoadConfig(o.configFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	return configs, cmd.NewLogger(configs.LogLevel), nil
}
