// Package db opens the relational store and declares its table models.
package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database selected by driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch driver {
	case DriverSQLite:
		gdb, err = gorm.Open(sqlite.Open(dsn), cfg)
	case DriverPostgres:
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return gdb, nil
}

// Ping verifies the underlying connection.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady pings the database until it responds or the timeout elapses.
func WaitForReady(ctx context.Context, gdb *gorm.DB, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if err := Ping(ctx, gdb); err == nil {
			return nil
		} else if time.Now().After(deadline) {
			return fmt.Errorf("database not ready after %s: %w", timeout, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// AutoMigrate creates the insight and junction tables. Intended for
// local/dev bootstrap only; production schemas are managed externally.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&InsightRow{},
		&CompanyMapping{},
		&BusinessActivityMapping{},
		&ContentTypeMapping{},
		&IndustryMapping{},
		&LocationMapping{},
		&SentimentMapping{},
		&SourceTypeMapping{},
	)
}

// Close releases the connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}
	return sqlDB.Close()
}
