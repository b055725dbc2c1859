package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies pending migrations over a dedicated connection; closing
// the migrate instance closes that connection too.
func Migrate(cfg Config) error {
	migrateDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	var driver database.Driver
	switch cfg.Driver {
	case DriverPostgres:
		driver, err = migratepg.WithInstance(migrateDB, &migratepg.Config{})
	case DriverSQLite:
		driver, err = migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return fmt.Errorf("create %s migration driver: %w", cfg.Driver, err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
