package postgres

import (
	"database/sql"
	"fmt"

	"housebuilder/internal/adapters/out/postgres/houserepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects GORM to the database described by dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or alters the tables owned by this adapter.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&houserepo.HouseDTO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// EnsureDatabase creates dbName when it does not exist yet. maintenanceDSN must
// point at a database that always exists, usually "postgres".
func EnsureDatabase(maintenanceDSN, dbName string) error {
	conn, err := sql.Open("postgres", maintenanceDSN)
	if err != nil {
		return fmt.Errorf("failed to open maintenance connection: %w", err)
	}
	defer conn.Close()

	var exists bool
	if err = conn.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to look up database %q: %w", dbName, err)
	}

	if exists {
		return nil
	}

	if _, err = conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName)); err != nil {
		return fmt.Errorf("failed to create database %q: %w", dbName, err)
	}
	return nil
}
