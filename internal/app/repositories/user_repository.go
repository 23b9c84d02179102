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

// usersEmailKey is the unique constraint on users.email
const usersEmailKey = "users_email_key"

var userColumns = []string{"id", "name", "email", "password", "role", "assigned_classes", "created_at"}

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.AssignedClasses, &user.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	classes := user.AssignedClasses
	if classes == nil {
		classes = []string{}
	}

	sql, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password, user.Role, classes, user.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create user SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	user.AssignedClasses = classes
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get user SQL: %w", err)
	}
	return scanUser(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get user SQL: %w", err)
	}
	return scanUser(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Conn(ctx).QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// AddAssignedClass appends classID to the assigned classes of every user in
// userIDs that does not hold it yet.
func (r *UserRepository) AddAssignedClass(ctx context.Context, userIDs []string, classID string) error {
	if len(userIDs) == 0 {
		return nil
	}

	sql, args, err := addAssignedClassQuery(userIDs, classID).ToSql()
	if err != nil {
		return fmt.Errorf("error building add assigned class SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error adding assigned class: %w", err)
	}
	return nil
}

// RemoveAssignedClass pulls classID from the assigned classes of every user in userIDs
func (r *UserRepository) RemoveAssignedClass(ctx context.Context, userIDs []string, classID string) error {
	if len(userIDs) == 0 {
		return nil
	}

	sql, args, err := removeAssignedClassQuery(userIDs, classID).ToSql()
	if err != nil {
		return fmt.Errorf("error building remove assigned class SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error removing assigned class: %w", err)
	}
	return nil
}

func addAssignedClassQuery(userIDs []string, classID string) squirrel.UpdateBuilder {
	return psql.Update("users").
		Set("assigned_classes", squirrel.Expr("array_append(assigned_classes, ?::varchar)", classID)).
		Where(squirrel.Eq{"id": userIDs}).
		Where(squirrel.Expr("NOT (?::varchar = ANY(assigned_classes))", classID))
}

func removeAssignedClassQuery(userIDs []string, classID string) squirrel.UpdateBuilder {
	return psql.Update("users").
		Set("assigned_classes", squirrel.Expr("array_remove(assigned_classes, ?::varchar)", classID)).
		Where(squirrel.Eq{"id": userIDs})
}
