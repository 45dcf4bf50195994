package kitchen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Scarred95/CloudCookbook/internal/cookbook"
	"github.com/Scarred95/CloudCookbook/internal/logger"
	"github.com/Scarred95/CloudCookbook/internal/models"
	"github.com/Scarred95/CloudCookbook/internal/pantry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrRecipeNotFound means the requested recipe id does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// Status of a cooking attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// MissingItem describes one shortfall found during the feasibility check.
type MissingItem struct {
	Name   string `json:"ingredient_name"`
	Needed int64  `json:"needed"`
	Have   int64  `json:"have"`
}

func (m MissingItem) String() string {
	return fmt.Sprintf("%s (Need %d, Have %d)", m.Name, m.Needed, m.Have)
}

// Result is the outcome of a cooking attempt. Storage failures surface as
// a separate error return, never as a Result.
type Result struct {
	Status  Status        `json:"status"`
	Message string        `json:"message"`
	Missing []MissingItem `json:"missing,omitempty"`
}

// Cooker executes the cooking transaction: feasibility check, then an
// atomic multi-row debit of the user's pantry.
type Cooker struct {
	DB       *gorm.DB
	Ledger   *pantry.Ledger
	Cookbook *cookbook.Store
}

func NewCooker(db *gorm.DB, ledger *pantry.Ledger, store *cookbook.Store) *Cooker {
	return &Cooker{DB: db, Ledger: ledger, Cookbook: store}
}

// insufficientErr aborts the debit transaction when a row changed between
// the feasibility read and the write.
type insufficientErr struct {
	item MissingItem
}

func (e *insufficientErr) Error() string {
	return "insufficient inventory: " + e.item.String()
}

// Cook attempts to cook a recipe for a user.
//
// Step 1 is a read-only feasibility check against a pantry snapshot; any
// shortfall returns a Failed result with the itemized missing list and no
// mutation. Step 2 debits every requirement inside one transaction, in
// ascending ingredient-id order, with each UPDATE guarded by
// amount >= needed. The guard re-validates sufficiency at write time, so
// a concurrent cook or removal that drained a row between the two steps
// rolls the whole transaction back instead of overdrawing the ledger.
// Rows that reach zero are deleted in the same transaction.
func (c *Cooker) Cook(userID, recipeID uint) (*Result, error) {
	recipe, err := c.Cookbook.Get(recipeID)
	if err != nil {
		if errors.Is(err, cookbook.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	requirements, err := c.Cookbook.Requirements(recipeID)
	if err != nil {
		return nil, err
	}

	snapshot, err := c.Ledger.Snapshot(userID)
	if err != nil {
		return nil, err
	}

	// Step 1: feasibility, no mutation on failure
	missing := c.findMissing(requirements, snapshot)
	if len(missing) > 0 {
		logger.Warn("cook rejected, missing ingredients",
			zap.Uint("user_id", userID),
			zap.Uint("recipe_id", recipeID),
			zap.Int("missing_count", len(missing)))
		return &Result{
			Status:  StatusFailed,
			Message: "Not enough ingredients!",
			Missing: missing,
		}, nil
	}

	// Step 2: atomic debit with write-time re-validation
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(requirements))
		for id := range requirements {
			ids = append(ids, id)
		}
		// fixed acquisition order keeps multi-row debits deadlock-safe
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, ingID := range ids {
			needed := requirements[ingID]
			res := tx.Model(&models.PantryEntry{}).
				Where("user_id = ? AND ingredient_id = ? AND amount >= ?", userID, ingID, needed).
				Update("amount", gorm.Expr("amount - ?", needed))
			if res.Error != nil {
				return fmt.Errorf("debit ingredient %d: %w", ingID, res.Error)
			}
			if res.RowsAffected == 0 {
				// quantities changed underneath the feasibility check
				return &insufficientErr{item: c.describeShortfall(tx, userID, ingID, needed)}
			}
		}

		if err := tx.Where("user_id = ? AND amount <= 0", userID).
			Delete(&models.PantryEntry{}).Error; err != nil {
			return fmt.Errorf("clean up pantry rows: %w", err)
		}
		return nil
	})

	var insufficient *insufficientErr
	if errors.As(err, &insufficient) {
		logger.Warn("cook raced, pantry drained mid-flight",
			zap.Uint("user_id", userID),
			zap.Uint("recipe_id", recipeID),
			zap.String("shortfall", insufficient.item.String()))
		return &Result{
			Status:  StatusFailed,
			Message: "Not enough ingredients!",
			Missing: []MissingItem{insufficient.item},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cook recipe %d for user %d: %w", recipeID, userID, err)
	}

	logger.Info("cooking complete",
		zap.Uint("user_id", userID),
		zap.Uint("recipe_id", recipeID),
		zap.String("recipe", recipe.Name))
	return &Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Successfully cooked %s! Ingredients removed from pantry.", recipe.Name),
	}, nil
}

func (c *Cooker) findMissing(requirements, snapshot map[uint]int64) []MissingItem {
	ids := make([]uint, 0, len(requirements))
	for id := range requirements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var missing []MissingItem
	for _, ingID := range ids {
		needed := requirements[ingID]
		have := snapshot[ingID]
		if have < needed {
			name, err := c.Ledger.Catalog.NameOf(ingID)
			if err != nil {
				name = fmt.Sprintf("ingredient %d", ingID)
			}
			missing = append(missing, MissingItem{Name: name, Needed: needed, Have: have})
		}
	}
	return missing
}

// describeShortfall reads the current amount inside the aborting
// transaction so the caller sees the quantity that made the debit fail.
func (c *Cooker) describeShortfall(tx *gorm.DB, userID, ingID uint, needed int64) MissingItem {
	name, err := c.Ledger.Catalog.NameOf(ingID)
	if err != nil {
		name = fmt.Sprintf("ingredient %d", ingID)
	}

	var entry models.PantryEntry
	var have int64
	if err := tx.Where("user_id = ? AND ingredient_id = ?", userID, ingID).
		First(&entry).Error; err == nil {
		have = entry.Amount
	}
	return MissingItem{Name: name, Needed: needed, Have: have}
}
