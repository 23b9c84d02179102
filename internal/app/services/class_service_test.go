package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories/repotest"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

type classFixture struct {
	users   *repotest.UserRepo
	classes *repotest.ClassRepo
	tx      *repotest.Tx
	svc     *ClassService
	teacher *models.User
	s1, s2  *models.User
}

func strPtr(s string) *string { return &s }

func newClassFixture() *classFixture {
	f := &classFixture{
		teacher: &models.User{ID: objectid.New(), Role: models.RoleTeacher, AssignedClasses: []string{}},
		s1:      &models.User{ID: objectid.New(), Role: models.RoleStudent, AssignedClasses: []string{}},
		s2:      &models.User{ID: objectid.New(), Role: models.RoleStudent, AssignedClasses: []string{}},
		classes: repotest.NewClassRepo(),
		tx:      &repotest.Tx{},
	}
	f.users = repotest.NewUserRepo(f.teacher, f.s1, f.s2)
	f.svc = NewClassService(f.classes, f.users, f.tx, zerolog.Nop())
	return f
}

func TestCreateClassAssignsTeacherAndStudents(t *testing.T) {
	f := newClassFixture()

	class, err := f.svc.CreateClass(context.Background(), &dto.CreateClassRequest{
		Name:      " Algebra ",
		TeacherID: strPtr(f.teacher.ID),
		Students:  []string{f.s1.ID, f.s2.ID, f.s1.ID},
		Schedule:  "Mon 09:00",
	})
	require.NoError(t, err)

	assert.True(t, objectid.IsValid(class.ID))
	assert.Equal(t, "Algebra", class.Name)
	assert.Equal(t, []string{f.s1.ID, f.s2.ID}, class.Students)
	assert.Nil(t, class.HeadID)
	assert.Equal(t, 1, f.tx.Calls)

	for _, u := range []*models.User{f.teacher, f.s1, f.s2} {
		assert.Equal(t, []string{class.ID}, u.AssignedClasses, u.ID)
	}
}

func TestCreateClassRejectsMalformedIDs(t *testing.T) {
	f := newClassFixture()

	_, err := f.svc.CreateClass(context.Background(), &dto.CreateClassRequest{Name: "Algebra", Students: []string{"abc"}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.CreateClass(context.Background(), &dto.CreateClassRequest{Name: "Algebra", HeadID: strPtr("xyz")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, f.classes.Classes)
	assert.Zero(t, f.tx.Calls)
}

func TestDeleteClassPullsReferences(t *testing.T) {
	f := newClassFixture()

	class, err := f.svc.CreateClass(context.Background(), &dto.CreateClassRequest{
		Name:      "Algebra",
		TeacherID: strPtr(f.teacher.ID),
		Students:  []string{f.s1.ID, f.s2.ID},
	})
	require.NoError(t, err)

	other := objectid.New()
	f.s1.AssignedClasses = append(f.s1.AssignedClasses, other)

	resp, err := f.svc.DeleteClass(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, resp.DeletedClassID)
	assert.Equal(t, 2, f.tx.Calls)

	assert.Empty(t, f.teacher.AssignedClasses)
	assert.Equal(t, []string{other}, f.s1.AssignedClasses)
	assert.Empty(t, f.s2.AssignedClasses)

	_, err = f.classes.GetByID(context.Background(), class.ID)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestDeleteClassWithoutTeacherOrStudents(t *testing.T) {
	f := newClassFixture()
	id := objectid.New()
	f.classes.Classes[id] = &models.Class{ID: id, Name: "Empty"}

	resp, err := f.svc.DeleteClass(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.DeletedClassID)
}

func TestDeleteClassNotFound(t *testing.T) {
	f := newClassFixture()

	for _, id := range []string{objectid.New(), "not-an-id"} {
		_, err := f.svc.DeleteClass(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound, id)
		assert.Equal(t, "Class not found", apperrors.UserMessage(err, ""))
	}
}

func TestDeleteClassPropagatesUnexpectedErrors(t *testing.T) {
	f := newClassFixture()
	id := objectid.New()
	f.classes.Classes[id] = &models.Class{ID: id, Name: "Algebra"}
	f.classes.DeleteErr = repotest.ErrDB

	_, err := f.svc.DeleteClass(context.Background(), id)
	assert.ErrorIs(t, err, repotest.ErrDB)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
}
