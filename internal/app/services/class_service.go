package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

const msgClassNotFound = "Class not found"

// ClassService handles class lifecycle and keeps users' assigned classes in sync
type ClassService struct {
	classRepo repositories.IClassRepository
	userRepo  repositories.IUserRepository
	tx        repositories.Transactor
	logger    zerolog.Logger
	now       func() time.Time
}

// NewClassService creates a new ClassService
func NewClassService(
	classRepo repositories.IClassRepository,
	userRepo repositories.IUserRepository,
	tx repositories.Transactor,
	logger zerolog.Logger,
) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		userRepo:  userRepo,
		tx:        tx,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateClass inserts a class and pushes its id into the teacher's and every
// student's assigned classes in one transaction.
func (s *ClassService) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	class := &models.Class{
		ID:        objectid.New(),
		Name:      name,
		TeacherID: blankToNil(req.TeacherID),
		Students:  dedupe(req.Students),
		Schedule:  strings.TrimSpace(req.Schedule),
		HeadID:    blankToNil(req.HeadID),
		CreatedAt: s.now(),
	}
	if !objectid.AllValid(class.Students) {
		return nil, apperrors.NewValidationError("students", "students must contain valid ids")
	}
	for field, id := range map[string]*string{"teacherId": class.TeacherID, "headId": class.HeadID} {
		if id != nil && !objectid.IsValid(*id) {
			return nil, apperrors.NewValidationError(field, field+" must be a valid id")
		}
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.classRepo.Create(ctx, class); err != nil {
			return err
		}
		if class.TeacherID != nil {
			if err := s.userRepo.AddAssignedClass(ctx, []string{*class.TeacherID}, class.ID); err != nil {
				return err
			}
		}
		return s.userRepo.AddAssignedClass(ctx, class.Students, class.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating class: %w", err)
	}

	s.logger.Info().Str("classID", class.ID).Int("students", class.StudentCount()).Msg("Class created")
	return class, nil
}

// DeleteClass removes a class and pulls its id from the teacher's and every
// enrolled student's assigned classes in one transaction.
func (s *ClassService) DeleteClass(ctx context.Context, classID string) (*dto.DeleteClassResponse, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		class, err := s.classRepo.GetByID(ctx, classID)
		if err != nil {
			return err
		}

		if class.TeacherID != nil && *class.TeacherID != "" {
			if err := s.userRepo.RemoveAssignedClass(ctx, []string{*class.TeacherID}, class.ID); err != nil {
				return err
			}
		}

		if len(class.Students) > 0 {
			if err := s.userRepo.RemoveAssignedClass(ctx, class.Students, class.ID); err != nil {
				return err
			}
		}

		return s.classRepo.Delete(ctx, class.ID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgClassNotFound)
		}
		return nil, fmt.Errorf("error deleting class %s: %w", classID, err)
	}

	s.logger.Info().Str("classID", classID).Msg("Class deleted")
	return &dto.DeleteClassResponse{DeletedClassID: classID}, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
