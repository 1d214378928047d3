package cmd

import (
	"context"

	"threadline/internal/cmd/flags"
	"threadline/internal/core"
	"threadline/internal/persistence"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Manage the database schema",
	Flags: []cli.Flag{
		flags.DatabaseURL,
	},
	Commands: []*cli.Command{
		{
			Name:  "up",
			Usage: "Apply all pending migrations",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					pal.Provide[core.DB](&persistence.DB{}),
					pal.Provide[core.Migrator](&persistence.Migrator{}),
					pal.Provide(&persistence.MigrationUpRunner{}),
				)
			},
		},
		{
			Name:  "down",
			Usage: "Roll back the most recent migration",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					pal.Provide[core.DB](&persistence.DB{}),
					pal.Provide[core.Migrator](&persistence.Migrator{}),
					pal.Provide(&persistence.MigrationDownRunner{}),
				)
			},
		},
	},
}
