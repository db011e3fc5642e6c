package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionParams mirrors database_config.json.
type ConnectionParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds a libpq URL for the configured database.
func (p ConnectionParams) DSN() string {
	return p.dsnFor(p.Database)
}

func (p ConnectionParams) dsnFor(database string) string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// EnsureDatabase connects to the maintenance database "postgres" and creates
// the configured database when it does not exist yet.
func EnsureDatabase(p ConnectionParams, log *slog.Logger) error {
	conn, err := sql.Open("postgres", p.dsnFor("postgres"))
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	var exists bool
	if err = conn.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", p.Database).Scan(&exists); err != nil {
		return fmt.Errorf("check database %q: %w", p.Database, err)
	}
	if exists {
		return nil
	}

	if _, err = conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(p.Database)); err != nil {
		return fmt.Errorf("create database %q: %w", p.Database, err)
	}
	log.Info("database created", slog.String("database", p.Database))
	return nil
}

// Open returns the GORM pool used by the write side.
func Open(p ConnectionParams, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(gormpostgres.Open(p.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

// OpenReadModel returns the sqlx pool used by query handlers.
func OpenReadModel(p ConnectionParams) (*sqlx.DB, error) {
	return sqlx.Connect("postgres", p.DSN())
}
