package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

func TestValidateAdminIgnoresCase(t *testing.T) {
	for _, role := range []string{"admin", "Admin", "ADMIN"} {
		assert.NoError(t, ValidateAdmin(Caller{UserID: "u", Role: role}, "denied"), role)
	}

	err := ValidateAdmin(Caller{UserID: "u", Role: "teacher"}, "denied")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, "denied", err.Error())
}

func TestValidateRoleIsExact(t *testing.T) {
	assert.NoError(t, ValidateRole(Caller{Role: "student"}, models.RoleStudent, "denied"))
	assert.ErrorIs(t, ValidateRole(Caller{Role: "Student"}, models.RoleStudent, "denied"), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, ValidateRole(Caller{Role: ""}, models.RoleStudent, "denied"), apperrors.ErrPermissionDenied)
}
