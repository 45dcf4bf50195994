package pantry

import (
	"errors"
	"fmt"

	"github.com/Scarred95/CloudCookbook/internal/catalog"
	"github.com/Scarred95/CloudCookbook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Direction selects whether Apply adds to or removes from the ledger.
type Direction string

const (
	Add    Direction = "add"
	Remove Direction = "remove"
)

// ParseDirection maps the wire value ("add"/"remove") onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Add:
		return Add, nil
	case Remove:
		return Remove, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrValidation, s)
	}
}

var (
	// ErrValidation means the input was rejected before touching storage.
	ErrValidation = errors.New("invalid pantry input")
	// ErrUnknownIngredient means the name has no global catalog entry.
	ErrUnknownIngredient = errors.New("ingredient does not exist")
	// ErrNotInPantry means the user holds no entry for the ingredient.
	ErrNotInPantry = errors.New("ingredient not in pantry")
)

// Entry is one joined pantry row for read views.
type Entry struct {
	IngredientID uint   `json:"ingredient_id"`
	Name         string `json:"ingredient_name"`
	Amount       int64  `json:"amount"`
}

// Ledger owns the per-user pantry rows. Every persisted row has
// Amount > 0; decrements that reach zero or below delete the row inside
// the same transaction, so the invariant holds at every commit point.
type Ledger struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func New(db *gorm.DB, cat *catalog.Catalog) *Ledger {
	return &Ledger{DB: db, Catalog: cat}
}

// Snapshot returns a point-in-time ingredient_id -> amount view of one
// user's pantry. An empty pantry yields an empty map, not an error.
func (l *Ledger) Snapshot(userID uint) (map[uint]int64, error) {
	var rows []models.PantryEntry
	if err := l.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load pantry for user %d: %w", userID, err)
	}

	snap := make(map[uint]int64, len(rows))
	for _, row := range rows {
		snap[row.IngredientID] = row.Amount
	}
	return snap, nil
}

// List returns the pantry joined with ingredient names, ordered by name.
func (l *Ledger) List(userID uint) ([]Entry, error) {
	var entries []Entry
	err := l.DB.Model(&models.PantryEntry{}).
		Select("pantry_entries.ingredient_id, ingredients.name, pantry_entries.amount").
		Joins("JOIN ingredients ON ingredients.id = pantry_entries.ingredient_id").
		Where("pantry_entries.user_id = ?", userID).
		Order("ingredients.name ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list pantry for user %d: %w", userID, err)
	}
	return entries, nil
}

// Apply adds or removes a quantity of one ingredient.
//
// ADD resolves-or-creates the catalog entry and upserts the pantry row in
// a single INSERT ... ON CONFLICT increment, so concurrent adds against
// the same row never lose updates.
//
// REMOVE resolves read-only (an ingredient unknown to the catalog cannot
// be removed), decrements inside one transaction and deletes the row when
// the result falls to zero or below (remove-more-than-available clamps to
// full removal).
func (l *Ledger) Apply(userID uint, ingredientName string, amount int64, dir Direction) error {
	name := catalog.Normalize(ingredientName)
	if name == "" {
		return fmt.Errorf("%w: empty ingredient name", ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrValidation, amount)
	}

	switch dir {
	case Add:
		return l.add(userID, name, amount)
	case Remove:
		return l.remove(userID, name, amount)
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrValidation, dir)
	}
}

func (l *Ledger) add(userID uint, name string, amount int64) error {
	ingID, err := l.Catalog.GetOrCreate(name)
	if err != nil {
		return err
	}

	entry := models.PantryEntry{
		UserID:       userID,
		IngredientID: ingID,
		Amount:       amount,
	}
	// insert-or-increment in one statement, no read-modify-write window
	err = l.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount": gorm.Expr("amount + excluded.amount"),
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("add %d %q to pantry of user %d: %w", amount, name, userID, err)
	}
	return nil
}

func (l *Ledger) remove(userID uint, name string, amount int64) error {
	ingID, err := l.Catalog.Resolve(name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
		}
		return err
	}

	return l.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PantryEntry{}).
			Where("user_id = ? AND ingredient_id = ?", userID, ingID).
			Update("amount", gorm.Expr("amount - ?", amount))
		if res.Error != nil {
			return fmt.Errorf("remove %d %q from pantry of user %d: %w", amount, name, userID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %q", ErrNotInPantry, name)
		}

		// rows at zero or below never persist
		if err := tx.Where("user_id = ? AND ingredient_id = ? AND amount <= 0", userID, ingID).
			Delete(&models.PantryEntry{}).Error; err != nil {
			return fmt.Errorf("clean up pantry row: %w", err)
		}
		return nil
	})
}

// RemoveAll deletes the user's entry for one ingredient regardless of the
// stored amount. Full removal is its own operation rather than a remove
// with an arbitrarily large amount.
func (l *Ledger) RemoveAll(userID uint, ingredientName string) error {
	name := catalog.Normalize(ingredientName)
	if name == "" {
		return fmt.Errorf("%w: empty ingredient name", ErrValidation)
	}

	ingID, err := l.Catalog.Resolve(name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
		}
		return err
	}

	res := l.DB.Where("user_id = ? AND ingredient_id = ?", userID, ingID).
		Delete(&models.PantryEntry{})
	if res.Error != nil {
		return fmt.Errorf("remove %q from pantry of user %d: %w", name, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrNotInPantry, name)
	}
	return nil
}
