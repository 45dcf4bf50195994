package kitchen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCook_Success(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "pancakes", map[string]int64{"flour": 60, "milk": 100, "eggs": 1})
	k.stock(t, 1, map[string]int64{"flour": 500, "milk": 1000, "eggs": 10})

	result, err := k.Cooker.Cook(1, id)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Contains(t, result.Message, "pancakes")

	// every requirement was debited
	snap, err := k.Ledger.Snapshot(1)
	require.NoError(t, err)
	flourID, _ := k.Ledger.Catalog.Resolve("flour")
	milkID, _ := k.Ledger.Catalog.Resolve("milk")
	eggsID, _ := k.Ledger.Catalog.Resolve("eggs")
	assert.Equal(t, int64(440), snap[flourID])
	assert.Equal(t, int64(900), snap[milkID])
	assert.Equal(t, int64(9), snap[eggsID])
}

func TestCook_DeletesRowsAtZero(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "toast", map[string]int64{"bread": 2})
	k.stock(t, 1, map[string]int64{"bread": 2})

	result, err := k.Cooker.Cook(1, id)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)

	// the drained row is gone, not stored at zero
	breadID, _ := k.Ledger.Catalog.Resolve("bread")
	snap, err := k.Ledger.Snapshot(1)
	require.NoError(t, err)
	assert.NotContains(t, snap, breadID)
}

func TestCook_FailedLeavesPantryUntouched(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "cake", map[string]int64{"flour": 60, "sugar": 500})
	k.stock(t, 1, map[string]int64{"flour": 500}) // no sugar at all

	result, err := k.Cooker.Cook(1, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)

	require.Len(t, result.Missing, 1)
	assert.Equal(t, "sugar", result.Missing[0].Name)
	assert.Equal(t, int64(500), result.Missing[0].Needed)
	assert.Equal(t, int64(0), result.Missing[0].Have)
	assert.Equal(t, "sugar (Need 500, Have 0)", result.Missing[0].String())

	// flour was not debited
	flourID, _ := k.Ledger.Catalog.Resolve("flour")
	snap, err := k.Ledger.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), snap[flourID])
}

func TestCook_ReportsEveryShortfall(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "feast", map[string]int64{"flour": 100, "milk": 200, "eggs": 3})
	k.stock(t, 1, map[string]int64{"flour": 50, "milk": 500, "eggs": 1})

	result, err := k.Cooker.Cook(1, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	require.Len(t, result.Missing, 2)

	names := []string{result.Missing[0].Name, result.Missing[1].Name}
	assert.ElementsMatch(t, []string{"flour", "eggs"}, names)
}

func TestCook_RecipeNotFound(t *testing.T) {
	k := newTestKitchen(t)

	_, err := k.Cooker.Cook(1, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestCook_Repeatable(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "toast", map[string]int64{"bread": 1})
	k.stock(t, 1, map[string]int64{"bread": 2})

	for i := 0; i < 2; i++ {
		result, err := k.Cooker.Cook(1, id)
		require.NoError(t, err)
		require.Equal(t, StatusSuccess, result.Status)
	}

	// third attempt finds an empty pantry
	result, err := k.Cooker.Cook(1, id)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
}

func TestCook_ConcurrentRace(t *testing.T) {
	k := newTestKitchen(t)

	id := k.addRecipe(t, "omelette", map[string]int64{"eggs": 3, "butter": 1})
	// stock for exactly one cook
	k.stock(t, 1, map[string]int64{"eggs": 3, "butter": 1})

	var wg sync.WaitGroup
	results := make([]*Result, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = k.Cooker.Cook(1, id)
		}(i)
	}
	wg.Wait()

	successes := 0
	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			continue // storage-level abort counts as the losing side
		}
		if results[i].Status == StatusSuccess {
			successes++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent cook may win")

	// the ledger never went negative
	snap, err := k.Ledger.Snapshot(1)
	require.NoError(t, err)
	for ingID, amount := range snap {
		assert.Positivef(t, amount, "ingredient %d has non-positive amount", ingID)
	}
}
