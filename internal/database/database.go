package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pageza/platepal/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database described by cfg.DatabaseURL
func New(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	log.Printf("Connecting to %s database", dialector.Name())

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	// Set connection pool settings
	if dialector.Name() == "sqlite" {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	// Test the connection
	if err := HealthCheck(context.Background(), db); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Dialector picks the gorm driver for a database URL
func Dialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("sqlite database path is empty")
		}
		return sqlite.Open(SQLiteDSN(path)), nil
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", databaseURL)
	}
}

// SQLiteDSN enables foreign key enforcement on a SQLite path
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
