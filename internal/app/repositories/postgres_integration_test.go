//go:build integration

package repositories

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classroom/internal/app/migrations"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

// Run with: CLASSROOM_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/app/repositories/

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	url := os.Getenv("CLASSROOM_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CLASSROOM_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	database := &db.PostgresDB{Pool: pool}
	require.NoError(t, migrations.NewMigrator(database, zerolog.Nop()).MigrateFromDirectory(ctx, "../../../migrations"))

	_, err = pool.Exec(ctx, `TRUNCATE users, classes, quizzes, assignments, materials`)
	require.NoError(t, err)

	return NewRepositories(database)
}

func newUser(role models.RoleType) *models.User {
	id := objectid.New()
	return &models.User{
		ID:        id,
		Name:      string(role) + " " + id[:6],
		Email:     id + "@school.edu",
		Password:  "hash",
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func TestClassDeletionPullsReferencesInPostgres(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	teacher, s1, s2 := newUser(models.RoleTeacher), newUser(models.RoleStudent), newUser(models.RoleStudent)
	for _, u := range []*models.User{teacher, s1, s2} {
		require.NoError(t, repos.UserRepository.Create(ctx, u))
	}

	class := &models.Class{ID: objectid.New(), Name: "Algebra", TeacherID: &teacher.ID, Students: []string{s1.ID, s2.ID}, CreatedAt: time.Now()}
	require.NoError(t, repos.ClassRepository.Create(ctx, class))

	members := []string{teacher.ID, s1.ID, s2.ID}
	require.NoError(t, repos.UserRepository.AddAssignedClass(ctx, members, class.ID))
	require.NoError(t, repos.UserRepository.AddAssignedClass(ctx, members, class.ID))

	got, err := repos.UserRepository.GetByID(ctx, s1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{class.ID}, got.AssignedClasses)

	err = repos.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := repos.UserRepository.RemoveAssignedClass(ctx, members, class.ID); err != nil {
			return err
		}
		return repos.ClassRepository.Delete(ctx, class.ID)
	})
	require.NoError(t, err)

	for _, id := range members {
		u, err := repos.UserRepository.GetByID(ctx, id)
		require.NoError(t, err)
		assert.NotContains(t, u.AssignedClasses, class.ID)
	}

	_, err = repos.ClassRepository.GetByID(ctx, class.ID)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
	assert.ErrorIs(t, repos.ClassRepository.Delete(ctx, class.ID), apperrors.ErrClassNotFound)
}

func TestDuplicateEmailInPostgres(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	u := newUser(models.RoleStudent)
	require.NoError(t, repos.UserRepository.Create(ctx, u))

	dup := newUser(models.RoleStudent)
	dup.Email = u.Email
	assert.ErrorIs(t, repos.UserRepository.Create(ctx, dup), apperrors.ErrEmailAlreadyExists)
}

func TestQuizDeleteReturningInPostgres(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	quiz := &models.Quiz{
		ID:        objectid.New(),
		ClassID:   objectid.New(),
		Title:     "Quiz 1",
		Questions: json.RawMessage(`[{"q":"2+2?","a":4}]`),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repos.QuizRepository.Create(ctx, quiz))

	listed, err := repos.QuizRepository.ListByClassIDs(ctx, []string{quiz.ClassID})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	deleted, err := repos.QuizRepository.DeleteByID(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.Title, deleted.Title)
	assert.JSONEq(t, string(quiz.Questions), string(deleted.Questions))
	assert.Empty(t, deleted.Submissions)

	_, err = repos.QuizRepository.DeleteByID(ctx, quiz.ID)
	assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
}

func TestMaterialDetailsInPostgres(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	teacher := newUser(models.RoleTeacher)
	require.NoError(t, repos.UserRepository.Create(ctx, teacher))
	class := &models.Class{ID: objectid.New(), Name: "Physics", CreatedAt: time.Now()}
	require.NoError(t, repos.ClassRepository.Create(ctx, class))

	now := time.Now()
	older := &models.Material{ID: objectid.New(), ClassID: class.ID, Title: "Notes", FileURL: "/a", UploadedBy: objectid.New(), CreatedAt: now.Add(-time.Hour)}
	newer := &models.Material{ID: objectid.New(), ClassID: class.ID, Title: "Slides", FileURL: "/b", UploadedBy: teacher.ID, CreatedAt: now}
	require.NoError(t, repos.MaterialRepository.Create(ctx, older))
	require.NoError(t, repos.MaterialRepository.Create(ctx, newer))

	details, err := repos.MaterialRepository.ListDetailsByClassIDs(ctx, []string{class.ID})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, newer.ID, details[0].ID)
	assert.Equal(t, "Physics", details[0].ClassName)
	assert.Equal(t, teacher.Name, details[0].UploaderName)
	assert.Empty(t, details[1].UploaderName)
}
