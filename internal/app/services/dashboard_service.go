package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/pkg/helpers"
	"golang.org/x/sync/errgroup"
)

const (
	unnamedClass   = "Unnamed Class"
	scheduleNotSet = "Not set"
)

// DashboardService aggregates class progress for heads
type DashboardService struct {
	classRepo      repositories.IClassRepository
	quizRepo       repositories.IQuizRepository
	assignmentRepo repositories.IAssignmentRepository
	logger         zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	classRepo repositories.IClassRepository,
	quizRepo repositories.IQuizRepository,
	assignmentRepo repositories.IAssignmentRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		classRepo:      classRepo,
		quizRepo:       quizRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// GetHeadDashboard builds the dashboard for the classes supervised by headID
func (s *DashboardService) GetHeadDashboard(ctx context.Context, headID string) (*dto.DashboardResponse, error) {
	classes, err := s.classRepo.ListByHeadID(ctx, headID)
	if err != nil {
		return nil, fmt.Errorf("error listing supervised classes: %w", err)
	}

	if len(classes) == 0 {
		resp := BuildDashboard(nil, nil, nil)
		return &resp, nil
	}

	classIDs := make([]string, len(classes))
	for i, c := range classes {
		classIDs[i] = c.ID
	}

	var (
		quizzes     []*models.Quiz
		assignments []*models.Assignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quizzes, err = s.quizRepo.ListByClassIDs(gctx, classIDs)
		if err != nil {
			return fmt.Errorf("error listing quizzes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assignments, err = s.assignmentRepo.ListByClassIDs(gctx, classIDs)
		if err != nil {
			return fmt.Errorf("error listing assignments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := BuildDashboard(classes, quizzes, assignments)
	s.logger.Debug().
		Str("headID", headID).
		Int("classes", resp.Statistics.TotalClasses).
		Float64("averageProgress", resp.Statistics.AverageProgress).
		Msg("Head dashboard built")

	return &resp, nil
}

// BuildDashboard computes statistics, overview and per-class progress.
// A class's completion rate is submissions / (assessments * students) as a
// percentage with two decimals, 0 when nothing is expected.
func BuildDashboard(classes []*models.Class, quizzes []*models.Quiz, assignments []*models.Assignment) dto.DashboardResponse {
	type tally struct {
		quizzes, assignments, submissions int
	}

	perClass := make(map[string]*tally, len(classes))
	for _, c := range classes {
		perClass[c.ID] = &tally{}
	}
	for _, q := range quizzes {
		if t, ok := perClass[q.ClassID]; ok {
			t.quizzes++
			t.submissions += len(q.Submissions)
		}
	}
	for _, a := range assignments {
		if t, ok := perClass[a.ClassID]; ok {
			t.assignments++
			t.submissions += len(a.Submissions)
		}
	}

	resp := dto.DashboardResponse{
		ClassOverview: make([]dto.ClassOverview, 0, len(classes)),
		ProgressData:  make([]dto.ClassProgress, 0, len(classes)),
	}

	var rateSum float64
	for _, c := range classes {
		t := perClass[c.ID]
		students := c.StudentCount()
		rate := helpers.Percentage(t.submissions, (t.quizzes+t.assignments)*students)
		rateSum += rate

		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = unnamedClass
		}
		schedule := strings.TrimSpace(c.Schedule)
		if schedule == "" {
			schedule = scheduleNotSet
		}

		resp.ClassOverview = append(resp.ClassOverview, dto.ClassOverview{
			ClassID:      c.ID,
			ClassName:    name,
			TeacherID:    c.TeacherID,
			StudentCount: students,
			Schedule:     schedule,
		})
		resp.ProgressData = append(resp.ProgressData, dto.ClassProgress{
			ClassID:         c.ID,
			ClassName:       name,
			StudentCount:    students,
			QuizCount:       t.quizzes,
			AssignmentCount: t.assignments,
			CompletionRate:  rate,
		})

		resp.Statistics.TotalStudents += students
		resp.Statistics.TotalQuizzes += t.quizzes
		resp.Statistics.TotalAssignments += t.assignments
	}

	resp.Statistics.TotalClasses = len(classes)
	if len(classes) > 0 {
		resp.Statistics.AverageProgress = helpers.RoundTo(rateSum/float64(len(classes)), 2)
	}

	return resp
}
