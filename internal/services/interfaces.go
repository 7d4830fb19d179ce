package services

import (
	"impactcat/internal/models"
	"impactcat/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName, role string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description string) (*models.Category, error)
	GetCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(id string) (*models.Category, error)
	GetCategoryByName(name string) (*models.Category, error)
	UpdateCategory(id string, name, description *string) (*models.Category, error)
}

// ProductQuery holds list parameters for impact products. SortBy must be
// one of the whitelisted fields; anything else is rejected before the
// query runs.
type ProductQuery struct {
	Page     pagination.PageRequest
	FilterBy string
	SortBy   string
	Group    string
	Status   string
}

// ProductUpdate holds the fields of a partial product update. Nil
// pointers mean "leave unchanged".
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Group       *models.ProductGroup
	Status      *models.ProductStatus
}

// ProductServicer defines the contract for impact product business logic.
type ProductServicer interface {
	CreateProduct(name, categoryName string, group models.ProductGroup, description string, status models.ProductStatus) (*models.Product, error)
	GetProducts(query ProductQuery) (*pagination.PageResponse[models.Product], error)
	GetProductByID(id string) (*models.Product, error)
	UpdateProduct(id string, update ProductUpdate) (*models.Product, error)
	DeleteProduct(id string) error
}

// AuditServicer defines the contract for audit trail recording. Record
// never fails the caller: audit writes are best-effort and failures are
// surfaced to operators through the logs.
type AuditServicer interface {
	Record(userID string, action models.AuditAction, resourceType, resourceID, details, ipAddress, userAgent string)
}
