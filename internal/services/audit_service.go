package services

import (
	"gorm.io/gorm"

	"impactcat/internal/logger"
	"impactcat/internal/models"
)

// auditService handles audit trail recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record appends an audit trail entry. The primary operation has
// already committed by the time this runs, so errors are logged for
// operators but never propagate back to the caller.
func (s *auditService) Record(userID string, action models.AuditAction, resourceType, resourceID, details, ipAddress, userAgent string) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit trail entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
