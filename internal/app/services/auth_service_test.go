package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories/repotest"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/auth"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

func newAuthService(t *testing.T) (*AuthService, *auth.JWTService, *models.User) {
	t.Helper()
	hash, err := auth.HashPassword("password1")
	require.NoError(t, err)

	user := &models.User{
		ID:       objectid.New(),
		Name:     "Jane",
		Email:    "jane@school.edu",
		Password: hash,
		Role:     models.RoleTeacher,
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "classroom-test",
	})
	return NewAuthService(repotest.NewUserRepo(user), jwtService, zerolog.Nop()), jwtService, user
}

func TestLogin(t *testing.T) {
	svc, jwtService, user := newAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: " JANE@school.edu", Password: "password1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@school.edu", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@school.edu", Password: "password1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	svc, _, user := newAuthService(t)
	user.Role = models.RoleType("janitor")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@school.edu", Password: "password1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
