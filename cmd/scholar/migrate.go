package main

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/scholar/internal/config"
	"github.com/JaimeStill/scholar/internal/migrations"
	"github.com/JaimeStill/scholar/pkg/database"
	"github.com/JaimeStill/scholar/pkg/logging"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the relational schemas",
	}

	cmd.PersistentFlags().StringVarP(&target, "target", "t", "all", "schema to migrate: app, admin or all")

	each := func(fn func(r *migrations.Runner, target migrations.Target) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return forTargets(cfg, target, fn)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: each(func(r *migrations.Runner, _ migrations.Target) error {
			return r.Up()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every applied migration",
		Args:  cobra.NoArgs,
		RunE: each(func(r *migrations.Runner, _ migrations.Target) error {
			return r.Down()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: each(func(r *migrations.Runner, t migrations.Target) error {
			v, dirty, err := r.Version()
			if err != nil {
				return err
			}
			fmt.Printf("%s: version %d (dirty: %t)\n", t, v, dirty)
			return nil
		}),
	})

	return cmd
}

func forTargets(cfg *config.Config, target string, fn func(*migrations.Runner, migrations.Target) error) error {
	logger := logging.New(&cfg.Logging, nil)

	dbs := map[migrations.Target]*database.Config{
		migrations.App:   &cfg.Database,
		migrations.Admin: &cfg.AdminDatabase,
	}

	var targets []migrations.Target
	switch target {
	case "all":
		targets = []migrations.Target{migrations.App, migrations.Admin}
	case string(migrations.App), string(migrations.Admin):
		targets = []migrations.Target{migrations.Target(target)}
	default:
		return fmt.Errorf("unknown migration target %q", target)
	}

	for _, t := range targets {
		if err := migrateOne(dbs[t], t, logger, fn); err != nil {
			return err
		}
	}
	return nil
}

func migrateOne(cfg *database.Config, target migrations.Target, logger *slog.Logger, fn func(*migrations.Runner, migrations.Target) error) error {
	db, err := database.New(string(target), cfg, logger)
	if err != nil {
		return err
	}
	defer db.Connection().Close()

	r, err := migrations.New(db.Connection(), target, logger)
	if err != nil {
		return err
	}
	defer r.Close()

	return fn(r, target)
}
