package database

import (
	"fmt"
	"log"

	"github.com/pageza/platepal/backend/internal/models"
	"gorm.io/gorm"
)

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.BookmarkedRecipe{},
		&models.BookmarkedRestaurant{},
		&models.Session{},
	}
}

// RunMigrations creates or updates the schema, including the per-user
// unique indexes that back bookmark toggling.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running GORM auto-migration for %s", db.Dialector.Name())

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}
