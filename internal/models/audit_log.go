package models

// AuditAction is the fixed tag recorded for each kind of operation.
type AuditAction string

const (
	AuditActionAccess AuditAction = "ACCESS"
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// Resource type strings recorded in the audit trail.
const (
	ResourceImpactProduct     = "impact_product"
	ResourceImpactProductList = "impact_product_list"
	ResourceCategory          = "category"
	ResourceCategoryList      = "category_list"
	ResourceUser              = "user"
)

// AuditLog is an append-only record of who did what to which resource.
// Entries are written after the primary operation succeeds and are
// never mutated or deleted.
type AuditLog struct {
	Base
	UserID       string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       AuditAction `gorm:"not null" json:"action"`
	ResourceType string      `gorm:"not null;index" json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details"`
	IPAddress    string      `json:"ip_address"`
	UserAgent    string      `json:"user_agent"`
}
