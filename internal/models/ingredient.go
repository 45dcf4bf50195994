package models

// Ingredient is one entry of the global ingredient catalog.
// Name is stored normalized (lower-case, trimmed) and is unique.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"ingredient_id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"ingredient_name"`
}
