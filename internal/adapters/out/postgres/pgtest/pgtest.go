// Package pgtest starts throwaway PostgreSQL containers for integration
// tests.
package pgtest

import (
	"context"
	"strings"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	Database = "testdb"
	User     = "testuser"
	Password = "testpass"
)

// Container is a running PostgreSQL with an open GORM pool.
type Container struct {
	container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

func Start(ctx context.Context) (*Container, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase(Database),
		postgres.WithUsername(User),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{container: container, DSN: dsn, DB: db}, nil
}

// Host and Port expose the mapped address for code that builds its own
// connection strings.
func (c *Container) Host(ctx context.Context) (string, error) {
	return c.container.Host(ctx)
}

func (c *Container) Port(ctx context.Context) (int, error) {
	port, err := c.container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return 0, err
	}
	return port.Int(), nil
}

func (c *Container) Truncate(tables ...string) error {
	return c.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE").Error
}

func (c *Container) Terminate(ctx context.Context) error {
	if c == nil || c.container == nil {
		return nil
	}
	return c.container.Terminate(ctx)
}
