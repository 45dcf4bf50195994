package kitchen

import (
	"fmt"

	"github.com/Scarred95/CloudCookbook/internal/cookbook"
	"github.com/Scarred95/CloudCookbook/internal/models"
	"github.com/Scarred95/CloudCookbook/internal/pantry"

	"gorm.io/gorm"
)

// Matchmaker computes which recipes a user can cook from their current
// pantry. Read-only; it never touches the ledger.
type Matchmaker struct {
	DB     *gorm.DB
	Ledger *pantry.Ledger
}

func NewMatchmaker(db *gorm.DB, ledger *pantry.Ledger) *Matchmaker {
	return &Matchmaker{DB: db, Ledger: ledger}
}

// requirementRow is one row of the recipes x recipe_ingredients join.
type requirementRow struct {
	RecipeID     uint
	Name         string
	Description  string
	TimeNeeded   int
	CreatorID    uint
	IngredientID uint
	Needed       int64
}

// FindCookable returns every recipe whose full requirement list is covered
// by the user's pantry, in catalog order.
//
// One pantry snapshot, one joined query over all recipes, then an
// in-memory comparison with O(1) snapshot lookups. A recipe is dropped on
// its first unmet requirement. An empty pantry short-circuits to an empty
// result: every recipe needs at least one ingredient.
func (m *Matchmaker) FindCookable(userID uint) ([]cookbook.Summary, error) {
	snapshot, err := m.Ledger.Snapshot(userID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return []cookbook.Summary{}, nil
	}

	var rows []requirementRow
	err = m.DB.Model(&models.Recipe{}).
		Select(`recipes.id AS recipe_id, recipes.name, recipes.description,
			recipes.time_needed, recipes.creator_id,
			recipe_ingredients.ingredient_id, recipe_ingredients.needed`).
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Order("recipes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load recipe requirements: %w", err)
	}

	cookable := []cookbook.Summary{}
	var (
		current   *cookbook.Summary
		currentOK bool
	)
	flush := func() {
		if current != nil && currentOK {
			cookable = append(cookable, *current)
		}
	}

	// rows arrive grouped by recipe id
	for _, row := range rows {
		if current == nil || current.ID != row.RecipeID {
			flush()
			current = &cookbook.Summary{
				ID:          row.RecipeID,
				Name:        row.Name,
				Description: row.Description,
				CreatorID:   row.CreatorID,
				TimeNeeded:  row.TimeNeeded,
			}
			currentOK = true
		}
		if !currentOK {
			continue // already failed an earlier requirement
		}
		if snapshot[row.IngredientID] < row.Needed {
			currentOK = false
		}
	}
	flush()

	return cookable, nil
}
