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
	"github.com/yigit/classroom/internal/pkg/filestorage"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

const (
	msgStudentOnly      = "Access denied. Student only."
	msgStudentNotFound  = "Student not found"
	unknownRelationName = "Unknown"
	materialsSubPath    = "materials"
)

// MaterialService handles lecture materials
type MaterialService struct {
	materialRepo repositories.IMaterialRepository
	userRepo     repositories.IUserRepository
	classRepo    repositories.IClassRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
	now          func() time.Time
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	userRepo repositories.IUserRepository,
	classRepo repositories.IClassRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		userRepo:     userRepo,
		classRepo:    classRepo,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

// ListForStudent returns the materials of every class assigned to the calling
// student. The boolean is false when the student has no assigned classes.
func (s *MaterialService) ListForStudent(ctx context.Context, caller authz.Caller) (*dto.MaterialListResponse, bool, error) {
	if err := authz.ValidateRole(caller, models.RoleStudent, msgStudentOnly); err != nil {
		return nil, false, err
	}

	student, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, false, apperrors.NewCustomError(apperrors.ErrStudentNotFound, msgStudentNotFound)
		}
		return nil, false, fmt.Errorf("error getting student: %w", err)
	}

	resp := &dto.MaterialListResponse{Materials: []dto.MaterialResponse{}}
	if len(student.AssignedClasses) == 0 {
		return resp, false, nil
	}

	materials, err := s.materialRepo.ListDetailsByClassIDs(ctx, student.AssignedClasses)
	if err != nil {
		return nil, false, fmt.Errorf("error listing materials: %w", err)
	}

	for _, m := range materials {
		resp.Materials = append(resp.Materials, dto.MaterialResponse{
			ID:         m.ID,
			Title:      m.Title,
			FileURL:    m.FileURL,
			ClassName:  orUnknown(m.ClassName),
			ClassID:    m.ClassID,
			UploadedBy: orUnknown(m.UploaderName),
			CreatedAt:  m.CreatedAt,
		})
	}
	resp.Count = len(resp.Materials)

	return resp, true, nil
}

// Upload stores the file and records a material for the class
func (s *MaterialService) Upload(ctx context.Context, uploaderID string, req *dto.UploadMaterialRequest) (*models.Material, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}

	if !objectid.IsValid(req.ClassID) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidClassID, "Invalid class ID format")
	}

	exists, err := s.classRepo.Exists(ctx, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("error checking class: %w", err)
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError(msgClassNotFound)
	}

	fileURL, err := s.storage.SaveFileWithPath(req.File, materialsSubPath)
	if err != nil {
		return nil, fmt.Errorf("error saving material file: %w", err)
	}

	material := &models.Material{
		ID:         objectid.New(),
		ClassID:    req.ClassID,
		Title:      title,
		FileURL:    fileURL,
		UploadedBy: uploaderID,
		CreatedAt:  s.now(),
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("fileURL", fileURL).Msg("Failed to remove orphaned material file")
		}
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	s.logger.Info().Str("materialID", material.ID).Str("classID", material.ClassID).Msg("Material uploaded")
	return material, nil
}

func orUnknown(name string) string {
	if strings.TrimSpace(name) == "" {
		return unknownRelationName
	}
	return name
}
