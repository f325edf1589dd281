// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MarcoPr4do/Neighlink-Backend/internal/db"
)

// New returns a migrated in-memory SQLite database private to the caller.
// It uses a single connection, so code under test must run every statement of
// a transaction through the transaction handle.
func New() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}
