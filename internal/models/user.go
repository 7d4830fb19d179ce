package models

// Role names recognized by the authorization policy.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleBackOffice   = "back_office"
	RoleSalesManager = "sales_manager"
	RoleViewer       = "viewer"
)

// User represents an API caller. The role drives the authorization
// policy; every other attribute is plain identity data.
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `gorm:"not null;default:viewer" json:"role"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}
