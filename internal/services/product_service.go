package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "impactcat/internal/errors"
	"impactcat/internal/models"
	"impactcat/internal/pagination"
)

// productSortColumns is the whitelist of sortable fields for product
// listings, mapped to their qualified column names. Any sort_by value
// outside this map is rejected before the query executes.
var productSortColumns = map[string]string{
	"created_at": "products.created_at",
	"name":       "products.name",
	"group":      "products.product_group",
	"status":     "products.status",
}

// productService handles impact product business logic.
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB) ProductServicer {
	return &productService{db: db}
}

// CreateProduct creates a new impact product in the named category.
// The category must already exist; (name, category) must be unique
// among non-deleted products. An empty status defaults to active.
func (s *productService) CreateProduct(name, categoryName string, group models.ProductGroup, description string, status models.ProductStatus) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name is required")
	}

	category, err := s.findCategoryByName(categoryName)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = models.ProductStatusActive
	}

	var count int64
	if err := s.db.Model(&models.Product{}).
		Where("name = ? AND category_id = ? AND is_deleted = ?", name, category.ID, false).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateProduct
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Status:      status,
		Group:       group,
		CategoryID:  category.ID,
	}

	if err := s.db.Create(product).Error; err != nil {
		// Concurrent creates race at the store; the partial unique index
		// is the enforcement point and the violation is a client error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateProduct
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	product.Category = category
	return product, nil
}

// GetProducts retrieves a filtered, sorted, paginated list of products.
// Soft-deleted products are always excluded. The free-text filter
// matches case-insensitively against the product name or its category
// name.
func (s *productService) GetProducts(query ProductQuery) (*pagination.PageResponse[models.Product], error) {
	query.Page.Defaults()

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortColumn, ok := productSortColumns[sortBy]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidSortField, "cannot sort by '"+query.SortBy+"'")
	}

	base := s.db.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_deleted = ?", false)

	if filter := strings.TrimSpace(query.FilterBy); filter != "" {
		pattern := "%" + strings.ToLower(filter) + "%"
		base = base.Where("LOWER(products.name) LIKE ? OR LOWER(categories.name) LIKE ?", pattern, pattern)
	}
	if query.Group != "" {
		base = base.Where("products.product_group = ?", query.Group)
	}
	if query.Status != "" {
		base = base.Where("products.status = ?", query.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var products []models.Product
	if err := base.Order(sortColumn).
		Scopes(pagination.Paginate(query.Page)).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(products, query.Page.Page, query.Page.PerPage, total)
	return &result, nil
}

// GetProductByID retrieves a product by ID with its category preloaded.
// Soft-deleted products are treated as not found.
func (s *productService) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// UpdateProduct applies a partial update. Only non-nil fields change.
// A named category is re-resolved and the update is rejected outright
// when it does not exist. updated_at is refreshed on any successful
// update.
func (s *productService) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name cannot be empty")
		}
		updates["name"] = trimmed
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		category, err := s.findCategoryByName(*update.Category)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}
	if update.Group != nil {
		updates["product_group"] = *update.Group
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}

	if len(updates) > 0 {
		// Re-check uniqueness when the identifying pair changes.
		name := product.Name
		if n, ok := updates["name"].(string); ok {
			name = n
		}
		categoryID := product.CategoryID
		if cid, ok := updates["category_id"].(string); ok {
			categoryID = cid
		}

		var count int64
		if err := s.db.Model(&models.Product{}).
			Where("name = ? AND category_id = ? AND is_deleted = ? AND id <> ?", name, categoryID, false, id).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateProduct
		}

		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrDuplicateProduct
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetProductByID(id)
}

// DeleteProduct soft-deletes a product: it flips is_deleted, forces the
// status to inactive, and refreshes updated_at. The row is never
// physically removed.
func (s *productService) DeleteProduct(id string) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"is_deleted": true,
		"status":     models.ProductStatusInactive,
	}
	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// findCategoryByName resolves a category reference from a product
// payload. A missing category is a 400 naming the missing category.
func (s *productService) findCategoryByName(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "category '"+name+"' not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
