package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/dberrors"
)

var quizColumns = []string{"id", "class_id", "title", "questions", "submissions", "created_at"}

// QuizRepository handles database operations for quizzes
type QuizRepository struct {
	db *db.PostgresDB
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(database *db.PostgresDB) *QuizRepository {
	return &QuizRepository{db: database}
}

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := row.Scan(&quiz.ID, &quiz.ClassID, &quiz.Title, &quiz.Questions, &quiz.Submissions, &quiz.CreatedAt); err != nil {
		return nil, err
	}
	if quiz.Submissions == nil {
		quiz.Submissions = []models.Submission{}
	}
	return &quiz, nil
}

// Create inserts a new quiz
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.Submissions == nil {
		quiz.Submissions = []models.Submission{}
	}

	sql, args, err := psql.Insert("quizzes").
		Columns(quizColumns...).
		Values(quiz.ID, quiz.ClassID, quiz.Title, []byte(quiz.Questions), quiz.Submissions, quiz.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create quiz SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating quiz: %w", err)
	}
	return nil
}

// DeleteByID removes a quiz and returns the deleted row
func (r *QuizRepository) DeleteByID(ctx context.Context, id string) (*models.Quiz, error) {
	sql, args, err := deleteQuizQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building delete quiz SQL: %w", err)
	}

	quiz, err := scanQuiz(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("error deleting quiz: %w", err)
	}
	return quiz, nil
}

// ListByClassIDs returns every quiz belonging to one of classIDs
func (r *QuizRepository) ListByClassIDs(ctx context.Context, classIDs []string) ([]*models.Quiz, error) {
	if len(classIDs) == 0 {
		return []*models.Quiz{}, nil
	}

	sql, args, err := psql.Select(quizColumns...).
		From("quizzes").
		Where(squirrel.Eq{"class_id": classIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list quizzes SQL: %w", err)
	}

	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []*models.Quiz{}
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quizzes: %w", err)
	}

	return quizzes, nil
}

func deleteQuizQuery(id string) squirrel.DeleteBuilder {
	return psql.Delete("quizzes").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(quizColumns, ", "))
}
