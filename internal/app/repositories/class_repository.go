package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/dberrors"
)

var classColumns = []string{"id", "name", "teacher_id", "students", "schedule", "head_id", "created_at"}

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *db.PostgresDB
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(database *db.PostgresDB) *ClassRepository {
	return &ClassRepository{db: database}
}

func scanClass(row pgx.Row) (*models.Class, error) {
	var class models.Class
	err := row.Scan(
		&class.ID, &class.Name, &class.TeacherID, &class.Students,
		&class.Schedule, &class.HeadID, &class.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// Create inserts a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	students := class.Students
	if students == nil {
		students = []string{}
	}

	sql, args, err := psql.Insert("classes").
		Columns(classColumns...).
		Values(class.ID, class.Name, class.TeacherID, students, class.Schedule, class.HeadID, class.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create class SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	class.Students = students
	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	sql, args, err := psql.Select(classColumns...).From("classes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get class SQL: %w", err)
	}

	class, err := scanClass(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error getting class: %w", err)
	}
	return class, nil
}

// Exists checks if a class exists
func (r *ClassRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Conn(ctx).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class: %w", err)
	}
	return exists, nil
}

// ListByHeadID returns every class supervised by headID, oldest first
func (r *ClassRepository) ListByHeadID(ctx context.Context, headID string) ([]*models.Class, error) {
	sql, args, err := psql.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"head_id": headID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list classes SQL: %w", err)
	}

	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning class: %w", err)
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classes: %w", err)
	}

	return classes, nil
}

// Delete removes a class row
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := psql.Delete("classes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building delete class SQL: %w", err)
	}

	tag, err := r.db.Conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}
