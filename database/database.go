// Package database opens the ledger database and keeps its schema current.
// Production runs on postgres; sqlite serves local development and tests.
package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

type Config struct {
	Driver string
	DSN    string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ConfigFromEnv() Config {
	driver := getEnv("DB_DRIVER", DriverPostgres)

	if driver == DriverSQLite {
		return Config{
			Driver: DriverSQLite,
			DSN:    SQLiteDSN(getEnv("DB_PATH", "./storage/finance.db")),
		}
	}

	return Config{
		Driver: DriverPostgres,
		DSN: fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "finance_tracker"),
			getEnv("DB_SSLMODE", "disable"),
		),
	}
}

// SQLiteDSN makes modernc store timestamps in a layout it can scan back.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_time_format=sqlite", path)
}

func New(log *logrus.Logger) (*sqlx.DB, error) {
	return Open(ConfigFromEnv(), log)
}

// Open connects, waits for the server to answer and applies migrations.
func Open(cfg Config, log *logrus.Logger) (*sqlx.DB, error) {
	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	for attempt := 1; ; attempt++ {
		err = db.Ping()
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			db.Close()
			return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
		}
		log.WithFields(logrus.Fields{
			"driver":  cfg.Driver,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database not ready, retrying")
		time.Sleep(connectBackoff)
	}

	if err := Migrate(cfg); err != nil {
		db.Close()
		return nil, err
	}

	log.WithField("driver", cfg.Driver).Info("Database connected")
	return db, nil
}

// IsUniqueViolation reports whether err is a unique constraint failure from
// either supported driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}
