package services

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/yigit/classroom/internal/pkg/validation"
)

const (
	msgQuizFieldsNeeded = "Missing required fields: classId, title, and questions are required"
	msgInvalidQuizID    = "Invalid quiz ID format"
	msgQuizNotFound     = "Quiz not found"
)

// QuizService handles quiz lifecycle
type QuizService struct {
	quizRepo repositories.IQuizRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewQuizService creates a new QuizService
func NewQuizService(quizRepo repositories.IQuizRepository, logger zerolog.Logger) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateQuiz persists a quiz with no submissions
func (s *QuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*models.Quiz, error) {
	classID := strings.TrimSpace(req.ClassID)
	title := strings.TrimSpace(req.Title)
	if classID == "" || title == "" || isFalsyJSON(req.Questions) {
		return nil, apperrors.NewBadRequestError(msgQuizFieldsNeeded)
	}

	quiz := &models.Quiz{
		ID:          objectid.New(),
		ClassID:     classID,
		Title:       title,
		Questions:   req.Questions,
		Submissions: []models.Submission{},
		CreatedAt:   s.now(),
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("error creating quiz: %w", err)
	}

	s.logger.Info().Str("quizID", quiz.ID).Str("classID", quiz.ClassID).Msg("Quiz created")
	return quiz, nil
}

// DeleteQuiz removes a quiz and returns it. Malformed ids are rejected before
// the repository is touched.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	if !validation.CompiledPatterns.ObjectID.MatchString(id) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidQuizID, msgInvalidQuizID)
	}

	quiz, err := s.quizRepo.DeleteByID(ctx, strings.ToLower(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrQuizNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgQuizNotFound)
		}
		return nil, fmt.Errorf("error deleting quiz %s: %w", id, err)
	}

	s.logger.Info().Str("quizID", quiz.ID).Msg("Quiz deleted")
	return quiz, nil
}

// isFalsyJSON reports whether raw is absent or one of the falsy JSON values:
// null, false, 0 or an empty string.
func isFalsyJSON(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}
