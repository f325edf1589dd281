package db

import (
	"fmt" // Error wrapping

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.WithField("models", len(domain.Models())).Info("Migration completed.") // Log successful migration
	return nil
}
