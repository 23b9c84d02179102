package auth

import (
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

// Caller is the identity resolved from an access token
type Caller struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the caller holds the admin role, ignoring case
func (c Caller) IsAdmin() bool {
	return models.RoleAdmin.Matches(c.Role)
}

// Is reports whether the caller holds exactly role
func (c Caller) Is(role models.RoleType) bool {
	return c.Role == string(role)
}

// ValidateAdmin returns a permission error unless the caller is an admin
func ValidateAdmin(caller Caller, message string) error {
	if !caller.IsAdmin() {
		return apperrors.NewForbiddenError(message)
	}
	return nil
}

// ValidateRole returns a permission error unless the caller holds exactly role
func ValidateRole(caller Caller, role models.RoleType, message string) error {
	if !caller.Is(role) {
		return apperrors.NewForbiddenError(message)
	}
	return nil
}
