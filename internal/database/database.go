// Package database opens the dashboard's gorm connection and holds the
// queries the handlers run against it.
package database

import (
	"fmt"

	"github.com/lildude/athletedash/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the Postgres database at dsn and migrates the schema.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}
	return Open(postgres.Open(dsn))
}

// Open connects using the given dialector and performs schema migration.
// Tests pass a sqlite dialector here.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}
