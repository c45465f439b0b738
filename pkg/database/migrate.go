package database

import (
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/edugest/edugest-api/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// NewMigrator builds a golang-migrate instance over the embedded SQL for the driver.
func NewMigrator(db *sqlx.DB, driver string) (*migrate.Migrate, error) {
	if driver == "" {
		driver = config.DriverSQLite
	}

	var (
		target migratedb.Driver
		err    error
	)
	switch driver {
	case config.DriverPostgres:
		target, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case config.DriverSQLite:
		target, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s migration driver: %w", driver, err)
	}

	source, err := iofs.New(migrationsFS, path.Join("migrations", driver))
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, driver, target)
}

// Migrate applies every pending up migration.
func Migrate(db *sqlx.DB, driver string) error {
	m, err := NewMigrator(db, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	// The sqlite3 driver closes the shared *sql.DB on Close, so only the
	// postgres driver's dedicated connection is released here.
	if driver == config.DriverPostgres {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			return errors.Join(srcErr, dbErr)
		}
	}
	return nil
}
