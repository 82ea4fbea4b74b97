package database

import (
	"fmt"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
// Parents are listed before children so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserTable{},
		&models.DayBook{},
		&models.MainCourse{},
		&models.MenuItem{},
		&models.FinalOrder{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
