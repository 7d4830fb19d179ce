// Package authz implements the role-based authorization policy. The
// policy is a static table mapping each permission level to the set of
// roles that satisfy it; it is injected into the route wiring rather
// than hardcoded per endpoint.
package authz

import "strings"

// Permission levels gating write operations.
const (
	LevelAdmin        = "admin"
	LevelManager      = "manager"
	LevelBackOffice   = "back_office"
	LevelSalesManager = "sales_manager"
)

// Policy maps a required permission level to the roles allowed at that
// level. Role and level comparison is case-insensitive. An unknown
// level has an empty allowed set, so authorization fails closed.
type Policy struct {
	levels map[string][]string
}

// NewPolicy builds a Policy from a level-to-roles table. Keys and role
// names are lowercased on the way in.
func NewPolicy(levels map[string][]string) *Policy {
	normalized := make(map[string][]string, len(levels))
	for level, roles := range levels {
		lower := make([]string, len(roles))
		for i, r := range roles {
			lower[i] = strings.ToLower(r)
		}
		normalized[strings.ToLower(level)] = lower
	}
	return &Policy{levels: normalized}
}

// DefaultPolicy returns the canonical role hierarchy: each level admits
// every role at or above it.
func DefaultPolicy() *Policy {
	return NewPolicy(map[string][]string{
		LevelAdmin:        {"admin"},
		LevelManager:      {"admin", "manager"},
		LevelBackOffice:   {"admin", "manager", "back_office"},
		LevelSalesManager: {"admin", "manager", "back_office", "sales_manager"},
	})
}

// IsAuthorized reports whether callerRole satisfies requiredLevel.
// Pure: no side effects, no state beyond the table.
func (p *Policy) IsAuthorized(callerRole, requiredLevel string) bool {
	role := strings.ToLower(callerRole)
	for _, allowed := range p.levels[strings.ToLower(requiredLevel)] {
		if role == allowed {
			return true
		}
	}
	return false
}
