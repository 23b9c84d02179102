package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/config"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/auth"
)

type memUsers struct {
	users []*models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.users = append(m.users, u)
	return nil
}

func (m *memUsers) GetByID(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (m *memUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (m *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) AddAssignedClass(context.Context, []string, string) error    { return nil }
func (m *memUsers) RemoveAssignedClass(context.Context, []string, string) error { return nil }

func seedConfig(email, password string) *config.Config {
	cfg := &config.Config{}
	cfg.Seed.AdminName = "Admin"
	cfg.Seed.AdminEmail = email
	cfg.Seed.AdminPassword = password
	return cfg
}

func TestCreateDefaultAdmin(t *testing.T) {
	repo := &memUsers{}
	cfg := seedConfig("Admin@School.EDU", "supersecret")

	require.NoError(t, CreateDefaultAdmin(context.Background(), repo, cfg, zerolog.Nop()))
	require.Len(t, repo.users, 1)

	admin := repo.users[0]
	assert.Equal(t, "admin@school.edu", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "supersecret"))

	// second run is a no-op
	require.NoError(t, CreateDefaultAdmin(context.Background(), repo, cfg, zerolog.Nop()))
	assert.Len(t, repo.users, 1)
}

func TestCreateDefaultAdminSkipsWithoutPassword(t *testing.T) {
	repo := &memUsers{}
	require.NoError(t, CreateDefaultAdmin(context.Background(), repo, seedConfig("admin@school.edu", ""), zerolog.Nop()))
	assert.Empty(t, repo.users)
}

func TestCreateDefaultAdminRejectsWeakPassword(t *testing.T) {
	repo := &memUsers{}
	err := CreateDefaultAdmin(context.Background(), repo, seedConfig("admin@school.edu", "short"), zerolog.Nop())
	assert.Error(t, err)
	assert.Empty(t, repo.users)
}
