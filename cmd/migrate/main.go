package main

import (
	"log/slog"
	"os"
	"strconv"

	"studio/config"
	"studio/internal/errors"
	"studio/internal/infra/persistence/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "apply the embedded studio schema migrations",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply all pending migrations",
				Action: withMigrator(up),
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: withMigrator(down),
			},
			{
				Name:      "goto",
				Usage:     "migrate up or down to a version",
				ArgsUsage: "<version>",
				Action:    withMigrator(gotoVersion),
			},
			{
				Name:   "status",
				Usage:  "print the current version",
				Action: withMigrator(status),
			},
			{
				Name:      "force",
				Usage:     "set the version without running migrations (clears the dirty flag)",
				ArgsUsage: "<version>",
				Action:    withMigrator(force),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func withMigrator(action func(*cli.Context, *migrate.Migrate) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		defer func() {
			if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
				slog.Warn("Failed to close migrator", slog.Any("source_error", sourceErr), slog.Any("db_error", dbErr))
			}
		}()

		return action(cctx, m)
	}
}

func newMigrator() (*migrate.Migrate, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate driver")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

func up(_ *cli.Context, m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No change: database is up to date")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "up")
	}
	slog.Info("Migrations applied")

	return nil
}

func down(cctx *cli.Context, m *migrate.Migrate) error {
	steps := cctx.Int("steps")
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}
	if err := m.Steps(-steps); err != nil {
		return errors.Wrap(err, "down")
	}
	slog.Info("Migrations rolled back", slog.Int("steps", steps))

	return nil
}

func gotoVersion(cctx *cli.Context, m *migrate.Migrate) error {
	version, err := versionArg(cctx)
	if err != nil {
		return err
	}

	err = m.Migrate(version)
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No change: database already at version", slog.Uint64("version", uint64(version)))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "goto %d", version)
	}
	slog.Info("Migrated", slog.Uint64("version", uint64(version)))

	return nil
}

func force(cctx *cli.Context, m *migrate.Migrate) error {
	version, err := versionArg(cctx)
	if err != nil {
		return err
	}

	return errors.Wrapf(m.Force(int(version)), "force %d", version)
}

func status(_ *cli.Context, m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		slog.Info("No migrations applied yet")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "version")
	}
	slog.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func versionArg(cctx *cli.Context) (uint, error) {
	if cctx.NArg() != 1 {
		return 0, errors.New("exactly one version argument is required")
	}

	version, err := strconv.ParseUint(cctx.Args().First(), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid version %q", cctx.Args().First())
	}

	return uint(version), nil
}
