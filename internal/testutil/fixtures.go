package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"impactcat/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with the given role, a hashed password,
// and a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:        name,
		Description: "fixture category",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestProduct creates an active product in the given category.
func CreateTestProduct(t *testing.T, db *gorm.DB, categoryID string, group models.ProductGroup) *models.Product {
	t.Helper()
	return CreateTestProductWithName(t, db, fmt.Sprintf("Test Product %d", nextID()), categoryID, group)
}

// CreateTestProductWithName creates an active product with the given name.
func CreateTestProductWithName(t *testing.T, db *gorm.DB, name, categoryID string, group models.ProductGroup) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:       name,
		Status:     models.ProductStatusActive,
		Group:      group,
		CategoryID: categoryID,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CountAuditEntries returns the number of audit entries recorded for
// the given resource type.
func CountAuditEntries(t *testing.T, db *gorm.DB, resourceType string) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.AuditLog{}).Where("resource_type = ?", resourceType).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit entries: %v", err)
	}
	return count
}
