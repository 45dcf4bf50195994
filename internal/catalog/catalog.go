package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Scarred95/CloudCookbook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound means no catalog entry matches the given name or id.
	ErrNotFound = errors.New("ingredient not found")
	// ErrInvalidName means the name is empty after normalization.
	ErrInvalidName = errors.New("invalid ingredient name")
	// ErrExists means the ingredient is already in the catalog.
	ErrExists = errors.New("ingredient already exists")
)

// Catalog is the global ingredient registry. Names are the canonical key,
// normalized before any lookup or insert; uniqueness is enforced by the
// database index on the normalized name.
type Catalog struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{DB: db}
}

// Normalize lower-cases and trims an ingredient name. All catalog and
// pantry code goes through this before touching storage.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve looks up the id for a name. Read-only.
func (c *Catalog) Resolve(name string) (uint, error) {
	name = Normalize(name)
	if name == "" {
		return 0, ErrInvalidName
	}

	var ing models.Ingredient
	if err := c.DB.Where("name = ?", name).First(&ing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("resolve ingredient: %w", err)
	}
	return ing.ID, nil
}

// NameOf looks up the name for an id.
func (c *Catalog) NameOf(id uint) (string, error) {
	var ing models.Ingredient
	if err := c.DB.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("lookup ingredient %d: %w", id, err)
	}
	return ing.Name, nil
}

// GetOrCreate returns the id for a name, inserting a new catalog entry if
// needed. The insert uses ON CONFLICT DO NOTHING against the unique name
// index, so concurrent calls for the same normalized name converge on a
// single row.
func (c *Catalog) GetOrCreate(name string) (uint, error) {
	name = Normalize(name)
	if name == "" {
		return 0, ErrInvalidName
	}

	ing := models.Ingredient{Name: name}
	if err := c.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing).Error; err != nil {
		return 0, fmt.Errorf("create ingredient %q: %w", name, err)
	}
	if ing.ID != 0 {
		return ing.ID, nil
	}

	// conflict path: the row already existed, fetch its id
	return c.Resolve(name)
}

// Create inserts a new catalog entry and fails if the normalized name is
// already taken. Used by the explicit item-creation endpoint; everything
// else should prefer GetOrCreate.
func (c *Catalog) Create(name string) (uint, error) {
	name = Normalize(name)
	if name == "" {
		return 0, ErrInvalidName
	}

	ing := models.Ingredient{Name: name}
	result := c.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&ing)
	if result.Error != nil {
		return 0, fmt.Errorf("create ingredient %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrExists
	}
	return ing.ID, nil
}
