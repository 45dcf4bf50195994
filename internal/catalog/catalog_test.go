package catalog

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Scarred95/CloudCookbook/internal/config"
	"github.com/Scarred95/CloudCookbook/internal/database"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"Milk ":       "milk",
		"  RICE":      "rice",
		"flour":       "flour",
		"  ":          "",
		"Bell Pepper": "bell pepper",
	}

	for in, want := range testCases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	c := newTestCatalog(t)

	id1, err := c.GetOrCreate("Milk ")
	if err != nil {
		t.Fatalf("GetOrCreate(\"Milk \") error = %v", err)
	}
	id2, err := c.GetOrCreate("milk")
	if err != nil {
		t.Fatalf("GetOrCreate(\"milk\") error = %v", err)
	}

	if id1 != id2 {
		t.Errorf("GetOrCreate returned different ids for same normalized name: %d vs %d", id1, id2)
	}
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	c := newTestCatalog(t)

	const workers = 8
	ids := make([]uint, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = c.GetOrCreate("Milk")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: GetOrCreate error = %v", i, errs[i])
		}
		if ids[i] != ids[0] {
			t.Errorf("worker %d got id %d, want %d", i, ids[i], ids[0])
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Resolve("unobtainium")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(\"unobtainium\") error = %v, want ErrNotFound", err)
	}
}

func TestResolve_EmptyName(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Resolve("  ")
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("Resolve(\"  \") error = %v, want ErrInvalidName", err)
	}
}

func TestNameOf(t *testing.T) {
	c := newTestCatalog(t)

	id, err := c.GetOrCreate("rice")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	name, err := c.NameOf(id)
	if err != nil {
		t.Fatalf("NameOf(%d) error = %v", id, err)
	}
	if name != "rice" {
		t.Errorf("NameOf(%d) = %q, want \"rice\"", id, name)
	}

	if _, err := c.NameOf(99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("NameOf(99999) error = %v, want ErrNotFound", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	c := newTestCatalog(t)

	if _, err := c.Create("Tomato"); err != nil {
		t.Fatalf("Create(\"Tomato\") error = %v", err)
	}

	_, err := c.Create("tomato ")
	if !errors.Is(err, ErrExists) {
		t.Errorf("Create(\"tomato \") error = %v, want ErrExists", err)
	}
}
