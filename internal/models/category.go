package models

// Category represents a named grouping of impact products. Categories
// are looked up by name when products are created or updated and are
// never deleted.
type Category struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
