package database

import (
	"fmt"

	"github.com/Scarred95/CloudCookbook/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.PantryEntry{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeStep{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
