package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
)

// AssignmentRepository handles database reads for assignments
type AssignmentRepository struct {
	db *db.PostgresDB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(database *db.PostgresDB) *AssignmentRepository {
	return &AssignmentRepository{db: database}
}

// ListByClassIDs returns every assignment belonging to one of classIDs
func (r *AssignmentRepository) ListByClassIDs(ctx context.Context, classIDs []string) ([]*models.Assignment, error) {
	if len(classIDs) == 0 {
		return []*models.Assignment{}, nil
	}

	sql, args, err := psql.Select("id", "class_id", "title", "submissions", "created_at").
		From("assignments").
		Where(squirrel.Eq{"class_id": classIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list assignments SQL: %w", err)
	}

	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.ClassID, &a.Title, &a.Submissions, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		if a.Submissions == nil {
			a.Submissions = []models.Submission{}
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}
