package models

import "time"

// Recipe is the recipe header row. Ingredient links and steps live in
// their own tables so the cooking path can join requirements directly.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"recipe_id"`
	Name        string    `gorm:"size:128;not null;index" json:"recipe_name"`
	Description string    `gorm:"size:255" json:"description"`
	TimeNeeded  int       `gorm:"not null" json:"time_needed"` // minutes
	CreatorID   uint      `gorm:"index" json:"recipe_creator"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// RecipeIngredient links a recipe to one required ingredient.
type RecipeIngredient struct {
	RecipeID     uint  `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint  `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Needed       int64 `gorm:"not null" json:"needed"`
}

// RecipeStep is one numbered instruction of a recipe.
type RecipeStep struct {
	RecipeID    uint   `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	StepNumber  int    `gorm:"primaryKey;autoIncrement:false" json:"step_number"`
	Instruction string `gorm:"size:512;not null" json:"instruction"`
}
