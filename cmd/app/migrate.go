package main

import (
	"retail/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var demo bool

	command := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database and tables, then add the default accounts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := opts.load()
			if err != nil {
				return err
			}

			if err = postgres.EnsureDatabase(configs.Database(), logger); err != nil {
				return err
			}
			gormDB, err := postgres.Open(configs.Database(), configs.Debug)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(gormDB); err != nil {
				return err
			}

			seeder := postgres.NewSeeder(gormDB, logger)
			if err = seeder.SeedDefaults(c.Context(), configs.Passwords); err != nil {
				return err
			}
			if demo {
				return seeder.SeedDemo(c.Context())
			}
			return nil
		},
	}
	command.Flags().BoolVar(&demo, "demo", false, "also add demo appliances, stock and customers")
	return command
}
