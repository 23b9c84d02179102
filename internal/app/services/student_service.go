package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	authz "github.com/yigit/classroom/internal/app/auth"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/auth"
	"github.com/yigit/classroom/internal/pkg/objectid"
	"github.com/yigit/classroom/internal/pkg/validation"
)

// Student creation messages returned to clients
const (
	msgAdminRequired       = "Forbidden: admin access required."
	msgStudentFieldsNeeded = "Name, email, and password are required."
	msgInvalidEmail        = "Invalid email format."
	msgEmailExists         = "Email already exists."
)

// StudentService handles student account management
type StudentService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(userRepo repositories.IUserRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// AuthorizeCreate rejects callers that may not add students
func (s *StudentService) AuthorizeCreate(caller authz.Caller) error {
	return authz.ValidateAdmin(caller, msgAdminRequired)
}

// CreateStudent validates the admin-submitted fields and persists a new student
func (s *StudentService) CreateStudent(ctx context.Context, caller authz.Caller, req *dto.CreateStudentRequest) (*dto.UserResponse, error) {
	if err := s.AuthorizeCreate(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	email := validation.NormalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewBadRequestError(msgStudentFieldsNeeded)
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("email", msgInvalidEmail)
	}
	if !validation.IsValidPassword(password) {
		return nil, apperrors.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters long.", validation.PasswordMinLength))
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, msgEmailExists)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:              objectid.New(),
		Name:            name,
		Email:           email,
		Password:        hashedPassword,
		Role:            models.RoleStudent,
		AssignedClasses: []string{},
		CreatedAt:       s.now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost the race against a concurrent insert of the same email
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, msgEmailExists)
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("studentID", user.ID).Str("createdBy", caller.UserID).Msg("Student created")

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
