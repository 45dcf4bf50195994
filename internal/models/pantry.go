package models

// PantryEntry is one row of a user's pantry ledger.
// Invariant: Amount > 0. A row that would fall to zero or below is
// deleted, never stored.
type PantryEntry struct {
	UserID       uint  `gorm:"primaryKey;autoIncrement:false" json:"uid"`
	IngredientID uint  `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Amount       int64 `gorm:"not null" json:"amount"`
}
