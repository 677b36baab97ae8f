package services

import (
	"testing"

	"spendbot/internal/models"
	"spendbot/internal/testutil"
)

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	categories, err := svc.ListCategories()
	testutil.AssertNoError(t, err)

	if len(categories) != len(models.DefaultCategories()) {
		t.Fatalf("got %d categories, want %d", len(categories), len(models.DefaultCategories()))
	}

	found := false
	for _, c := range categories {
		if c.Name == models.CategoryOther {
			found = true
		}
	}
	if !found {
		t.Error("the other category must always be present")
	}

	for i := 1; i < len(categories); i++ {
		if categories[i-1].ID >= categories[i].ID {
			t.Fatalf("categories not ordered by id: %d before %d", categories[i-1].ID, categories[i].ID)
		}
	}
}
