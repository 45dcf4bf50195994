package cookbook

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Scarred95/CloudCookbook/internal/catalog"
	"github.com/Scarred95/CloudCookbook/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no recipe with the given id exists.
	ErrNotFound = errors.New("recipe not found")
	// ErrValidation means the recipe payload was rejected before storage.
	ErrValidation = errors.New("invalid recipe")
)

// Recipe is the full recipe view exchanged with the API layer:
// header fields plus the ingredient-name -> amount requirements and the
// ordered instruction list.
type Recipe struct {
	ID           uint             `json:"recipe_id"`
	Name         string           `json:"recipe_name"`
	Description  string           `json:"description"`
	CreatorID    uint             `json:"recipe_creator"`
	TimeNeeded   int              `json:"time_needed"`
	Ingredients  map[string]int64 `json:"recipe_ingredients"`
	Instructions []string         `json:"instructions"`
}

// Summary is the light projection used for lists and matchmaking output.
type Summary struct {
	ID          uint   `json:"recipe_id"`
	Name        string `json:"recipe_name"`
	Description string `json:"description"`
	CreatorID   uint   `json:"recipe_creator"`
	TimeNeeded  int    `json:"time_needed"`
}

// Store is the recipe store: recipe headers plus their ingredient links
// and numbered steps, written together in one transaction.
type Store struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func New(db *gorm.DB, cat *catalog.Catalog) *Store {
	return &Store{DB: db, Catalog: cat}
}

func (s *Store) validate(r *Recipe) error {
	r.Name = catalog.Normalize(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", ErrValidation)
	}
	if r.TimeNeeded <= 0 {
		return fmt.Errorf("%w: time_needed must be positive", ErrValidation)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("%w: at least one ingredient required", ErrValidation)
	}
	for name, needed := range r.Ingredients {
		if catalog.Normalize(name) == "" {
			return fmt.Errorf("%w: empty ingredient name", ErrValidation)
		}
		if needed <= 0 {
			return fmt.Errorf("%w: ingredient %q needs a positive amount", ErrValidation, name)
		}
	}
	return nil
}

// resolveIngredients maps every requirement name onto a catalog id,
// creating missing catalog entries. Runs before the recipe transaction so
// catalog creation (which is idempotent) never holds the write lock longer
// than needed.
func (s *Store) resolveIngredients(r *Recipe) (map[uint]int64, error) {
	ids := make(map[uint]int64, len(r.Ingredients))
	for name, needed := range r.Ingredients {
		id, err := s.Catalog.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		ids[id] = needed
	}
	return ids, nil
}

// Create inserts the recipe header, ingredient links and steps atomically
// and returns the new recipe id.
func (s *Store) Create(r *Recipe) (uint, error) {
	if err := s.validate(r); err != nil {
		return 0, err
	}
	idToNeeded, err := s.resolveIngredients(r)
	if err != nil {
		return 0, err
	}

	creator := r.CreatorID
	if creator == 0 {
		creator = 1 // unattributed recipes belong to the admin account
	}

	var newID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		recipe := models.Recipe{
			Name:        r.Name,
			Description: r.Description,
			TimeNeeded:  r.TimeNeeded,
			CreatorID:   creator,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return fmt.Errorf("create recipe %q: %w", r.Name, err)
		}
		newID = recipe.ID

		if err := s.writeChildren(tx, recipe.ID, idToNeeded, r.Instructions); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// Update replaces an existing recipe wholesale: header fields are updated
// and the child rows are wiped and rewritten in the same transaction, so
// no stale steps or ingredient links survive a shrinking update.
func (s *Store) Update(id uint, r *Recipe) error {
	if err := s.validate(r); err != nil {
		return err
	}
	idToNeeded, err := s.resolveIngredients(r)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load recipe %d: %w", id, err)
		}

		recipe.Name = r.Name
		recipe.Description = r.Description
		recipe.TimeNeeded = r.TimeNeeded
		if r.CreatorID != 0 {
			recipe.CreatorID = r.CreatorID
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return fmt.Errorf("update recipe %d: %w", id, err)
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("clear recipe %d ingredients: %w", id, err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeStep{}).Error; err != nil {
			return fmt.Errorf("clear recipe %d steps: %w", id, err)
		}

		return s.writeChildren(tx, id, idToNeeded, r.Instructions)
	})
}

func (s *Store) writeChildren(tx *gorm.DB, recipeID uint, idToNeeded map[uint]int64, steps []string) error {
	// deterministic insert order
	ids := make([]uint, 0, len(idToNeeded))
	for id := range idToNeeded {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, ingID := range ids {
		link := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingID,
			Needed:       idToNeeded[ingID],
		}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("link ingredient %d to recipe %d: %w", ingID, recipeID, err)
		}
	}

	for i, instruction := range steps {
		step := models.RecipeStep{
			RecipeID:    recipeID,
			StepNumber:  i + 1,
			Instruction: instruction,
		}
		if err := tx.Create(&step).Error; err != nil {
			return fmt.Errorf("add step %d to recipe %d: %w", i+1, recipeID, err)
		}
	}
	return nil
}

// Get loads a full recipe with its requirement map and ordered steps.
func (s *Store) Get(id uint) (*Recipe, error) {
	var recipe models.Recipe
	if err := s.DB.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load recipe %d: %w", id, err)
	}

	ingredients, err := s.RequirementsByName(id)
	if err != nil {
		return nil, err
	}

	var steps []models.RecipeStep
	if err := s.DB.Where("recipe_id = ?", id).Order("step_number ASC").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("load recipe %d steps: %w", id, err)
	}
	instructions := make([]string, 0, len(steps))
	for _, st := range steps {
		instructions = append(instructions, st.Instruction)
	}

	return &Recipe{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Description:  recipe.Description,
		CreatorID:    recipe.CreatorID,
		TimeNeeded:   recipe.TimeNeeded,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

// Summaries returns all recipes in catalog (insertion) order.
// limit <= 0 means no limit.
func (s *Store) Summaries(limit int) ([]Summary, error) {
	q := s.DB.Model(&models.Recipe{}).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var summaries []Summary
	if err := q.Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return summaries, nil
}

// Requirements returns the ingredient_id -> needed map for one recipe.
func (s *Store) Requirements(id uint) (map[uint]int64, error) {
	var links []models.RecipeIngredient
	if err := s.DB.Where("recipe_id = ?", id).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("load recipe %d requirements: %w", id, err)
	}

	reqs := make(map[uint]int64, len(links))
	for _, link := range links {
		reqs[link.IngredientID] = link.Needed
	}
	return reqs, nil
}

// RequirementsByName returns the ingredient_name -> needed map for one
// recipe, joined against the catalog.
func (s *Store) RequirementsByName(id uint) (map[string]int64, error) {
	type row struct {
		Name   string
		Needed int64
	}
	var rows []row
	err := s.DB.Model(&models.RecipeIngredient{}).
		Select("ingredients.name, recipe_ingredients.needed").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load recipe %d requirements: %w", id, err)
	}

	reqs := make(map[string]int64, len(rows))
	for _, r := range rows {
		reqs[r.Name] = r.Needed
	}
	return reqs, nil
}
