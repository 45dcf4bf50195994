package kitchen

import (
	"path/filepath"
	"testing"

	"github.com/Scarred95/CloudCookbook/internal/catalog"
	"github.com/Scarred95/CloudCookbook/internal/config"
	"github.com/Scarred95/CloudCookbook/internal/cookbook"
	"github.com/Scarred95/CloudCookbook/internal/database"
	"github.com/Scarred95/CloudCookbook/internal/pantry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKitchen struct {
	Ledger     *pantry.Ledger
	Store      *cookbook.Store
	Matchmaker *Matchmaker
	Cooker     *Cooker
}

func newTestKitchen(t *testing.T) *testKitchen {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cat := catalog.New(db)
	ledger := pantry.New(db, cat)
	store := cookbook.New(db, cat)

	return &testKitchen{
		Ledger:     ledger,
		Store:      store,
		Matchmaker: NewMatchmaker(db, ledger),
		Cooker:     NewCooker(db, ledger, store),
	}
}

func (k *testKitchen) addRecipe(t *testing.T, name string, ingredients map[string]int64) uint {
	t.Helper()
	id, err := k.Store.Create(&cookbook.Recipe{
		Name:         name,
		Description:  "test recipe",
		TimeNeeded:   10,
		Ingredients:  ingredients,
		Instructions: []string{"cook it"},
	})
	require.NoError(t, err)
	return id
}

func (k *testKitchen) stock(t *testing.T, userID uint, pantryContents map[string]int64) {
	t.Helper()
	for name, amount := range pantryContents {
		require.NoError(t, k.Ledger.Apply(userID, name, amount, pantry.Add))
	}
}

func TestFindCookable_EmptyPantry(t *testing.T) {
	k := newTestKitchen(t)
	k.addRecipe(t, "pancakes", map[string]int64{"flour": 60})

	recipes, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFindCookable_FiltersByRequirements(t *testing.T) {
	k := newTestKitchen(t)

	r1 := k.addRecipe(t, "pancakes", map[string]int64{"flour": 60, "milk": 100, "eggs": 1})
	r2 := k.addRecipe(t, "bread", map[string]int64{"flour": 1000})

	k.stock(t, 1, map[string]int64{"flour": 500, "milk": 1000, "eggs": 10})

	recipes, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	assert.Equal(t, r1, recipes[0].ID)

	for _, r := range recipes {
		assert.NotEqual(t, r2, r.ID)
	}
}

func TestFindCookable_MissingIngredientEntirely(t *testing.T) {
	k := newTestKitchen(t)

	k.addRecipe(t, "caprese", map[string]int64{"tomato": 2, "mozzarella": 125})
	k.stock(t, 1, map[string]int64{"tomato": 5})

	recipes, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFindCookable_ExactAmountsSuffice(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "stir-fry", map[string]int64{"rice": 1, "soy sauce": 1})
	k.stock(t, 1, map[string]int64{"rice": 1, "soy sauce": 1})

	recipes, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, id, recipes[0].ID)
}

func TestFindCookable_CatalogOrder(t *testing.T) {
	k := newTestKitchen(t)

	first := k.addRecipe(t, "toast", map[string]int64{"bread": 1})
	second := k.addRecipe(t, "butter toast", map[string]int64{"bread": 1, "butter": 1})

	k.stock(t, 1, map[string]int64{"bread": 10, "butter": 10})

	recipes, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, first, recipes[0].ID)
	assert.Equal(t, second, recipes[1].ID)
}

func TestFindCookable_ReadOnly(t *testing.T) {
	k := newTestKitchen(t)

	k.addRecipe(t, "toast", map[string]int64{"bread": 1})
	k.stock(t, 1, map[string]int64{"bread": 5})

	_, err := k.Matchmaker.FindCookable(1)
	require.NoError(t, err)

	id, err := k.Ledger.Catalog.Resolve("bread")
	require.NoError(t, err)
	snap, err := k.Ledger.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), snap[id])
}
