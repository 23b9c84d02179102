package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/classroom/internal/app/models"
	appRepos "github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/config"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/auth"
	"github.com/yigit/classroom/internal/pkg/objectid"
	"github.com/yigit/classroom/internal/pkg/validation"
)

// CreateDefaultAdmin creates the configured admin account if no user holds its
// email yet. Without a configured password nothing is created.
func CreateDefaultAdmin(ctx context.Context, userRepo appRepos.IUserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := validation.NormalizeEmail(cfg.Seed.AdminEmail)
	password := strings.TrimSpace(cfg.Seed.AdminPassword)

	if email == "" || password == "" {
		lgr.Warn().Msg("Seed admin email or password not configured, skipping default admin")
		return nil
	}
	if !validation.IsValidEmail(email) || !validation.IsValidPassword(password) {
		return fmt.Errorf("seed admin credentials are invalid")
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking seed admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default admin already present")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing seed admin password: %w", err)
	}

	admin := &appModels.User{
		ID:              objectid.New(),
		Name:            cfg.Seed.AdminName,
		Email:           email,
		Password:        hash,
		Role:            appModels.RoleAdmin,
		AssignedClasses: []string{},
		CreatedAt:       time.Now(),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// another instance seeded concurrently
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating seed admin: %w", err)
	}

	lgr.Info().Str("email", email).Str("userID", admin.ID).Msg("Default admin created")
	return nil
}
