package models

// ProductStatus represents the lifecycle status of an impact product.
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusDeprecated ProductStatus = "deprecated"
)

// ProductGroup classifies an impact product independently of its category.
type ProductGroup string

const (
	ProductGroupRisk       ProductGroup = "risk"
	ProductGroupInvestment ProductGroup = "investment"
	ProductGroupHybrid     ProductGroup = "hybrid"
)

// Product represents an impact product: a financial instrument that
// belongs to exactly one category. Deletion is always a soft transition;
// soft-deleted rows stay in the table but are excluded from all default
// queries. (name, category_id) is unique among non-deleted rows.
type Product struct {
	Base
	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	Status      ProductStatus `gorm:"not null;default:active" json:"status"`
	Group       ProductGroup  `gorm:"column:product_group;not null" json:"group"`
	CategoryID  string        `gorm:"type:uuid;not null;index" json:"-"`
	IsDeleted   bool          `gorm:"not null;default:false;index" json:"is_deleted"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category"`
}
