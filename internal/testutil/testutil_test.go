package testutil_test

import (
	"testing"

	"impactcat/internal/models"
	"impactcat/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "products", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db, models.RoleManager)
	if user.ID == "" {
		t.Fatal("user should have a generated ID")
	}
	if user.Role != models.RoleManager {
		t.Errorf("expected manager role, got %s", user.Role)
	}

	category := testutil.CreateTestCategory(t, db)
	if category.ID == "" {
		t.Fatal("category should have a generated ID")
	}

	product := testutil.CreateTestProduct(t, db, category.ID, models.ProductGroupRisk)
	if product.Group != models.ProductGroupRisk {
		t.Errorf("expected risk group, got %s", product.Group)
	}
	if product.Status != models.ProductStatusActive {
		t.Errorf("expected active status, got %s", product.Status)
	}
	if product.IsDeleted {
		t.Error("fixture product should not be soft-deleted")
	}
}
