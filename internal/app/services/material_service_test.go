package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authz "github.com/yigit/classroom/internal/app/auth"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories/repotest"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/filestorage"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

func newMaterialService(t *testing.T, users *repotest.UserRepo, classes *repotest.ClassRepo, materials *repotest.MaterialRepo) (*MaterialService, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "http://files.test/uploads")
	require.NoError(t, err)
	return NewMaterialService(materials, users, classes, storage, zerolog.Nop()), dir
}

func TestListForStudent(t *testing.T) {
	c1, c2 := objectid.New(), objectid.New()
	student := &models.User{ID: objectid.New(), Role: models.RoleStudent, AssignedClasses: []string{c1, c2}}
	now := time.Now()

	materials := &repotest.MaterialRepo{Materials: []*models.MaterialDetails{
		{Material: models.Material{ID: "m2", ClassID: c2, Title: "Slides", CreatedAt: now}, ClassName: "Physics", UploaderName: "John"},
		{Material: models.Material{ID: "m1", ClassID: c1, Title: "Notes", CreatedAt: now.Add(-time.Hour)}},
		{Material: models.Material{ID: "m3", ClassID: objectid.New(), Title: "Hidden"}},
	}}

	svc, _ := newMaterialService(t, repotest.NewUserRepo(student), repotest.NewClassRepo(), materials)

	resp, hasClasses, err := svc.ListForStudent(context.Background(), authz.Caller{UserID: student.ID, Role: "student"})
	require.NoError(t, err)
	assert.True(t, hasClasses)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "m2", resp.Materials[0].ID)
	assert.Equal(t, "Physics", resp.Materials[0].ClassName)
	assert.Equal(t, "John", resp.Materials[0].UploadedBy)
	assert.Equal(t, "Unknown", resp.Materials[1].ClassName)
	assert.Equal(t, "Unknown", resp.Materials[1].UploadedBy)
	assert.Equal(t, c1, resp.Materials[1].ClassID)
}

func TestListForStudentWithoutClasses(t *testing.T) {
	student := &models.User{ID: objectid.New(), Role: models.RoleStudent}
	svc, _ := newMaterialService(t, repotest.NewUserRepo(student), repotest.NewClassRepo(), &repotest.MaterialRepo{})

	resp, hasClasses, err := svc.ListForStudent(context.Background(), authz.Caller{UserID: student.ID, Role: "student"})
	require.NoError(t, err)
	assert.False(t, hasClasses)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Materials)
	assert.Empty(t, resp.Materials)
}

func TestListForStudentRejections(t *testing.T) {
	svc, _ := newMaterialService(t, repotest.NewUserRepo(), repotest.NewClassRepo(), &repotest.MaterialRepo{})

	_, _, err := svc.ListForStudent(context.Background(), authz.Caller{UserID: "x", Role: "teacher"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, "Access denied. Student only.", apperrors.UserMessage(err, ""))

	_, _, err = svc.ListForStudent(context.Background(), authz.Caller{UserID: "x", Role: "Student"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, _, err = svc.ListForStudent(context.Background(), authz.Caller{UserID: objectid.New(), Role: "student"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, "Student not found", apperrors.UserMessage(err, ""))
}

func multipartFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestUploadMaterial(t *testing.T) {
	classID := objectid.New()
	materials := &repotest.MaterialRepo{}
	svc, dir := newMaterialService(t, repotest.NewUserRepo(), repotest.NewClassRepo(&models.Class{ID: classID}), materials)

	material, err := svc.Upload(context.Background(), "teacher-1", &dto.UploadMaterialRequest{
		ClassID: classID,
		Title:   " Week 1 ",
		File:    multipartFile(t, "slides.PDF", "%PDF-1.4"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Week 1", material.Title)
	assert.Equal(t, "teacher-1", material.UploadedBy)
	assert.True(t, strings.HasPrefix(material.FileURL, "http://files.test/uploads/materials/"))
	assert.True(t, strings.HasSuffix(material.FileURL, ".pdf"))
	require.Len(t, materials.Created, 1)

	entries, err := os.ReadDir(filepath.Join(dir, "materials"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadMaterialUnknownClass(t *testing.T) {
	svc, _ := newMaterialService(t, repotest.NewUserRepo(), repotest.NewClassRepo(), &repotest.MaterialRepo{})

	_, err := svc.Upload(context.Background(), "teacher-1", &dto.UploadMaterialRequest{
		ClassID: objectid.New(),
		Title:   "Week 1",
		File:    multipartFile(t, "a.txt", "x"),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUploadMaterialMalformedClassID(t *testing.T) {
	svc, dir := newMaterialService(t, repotest.NewUserRepo(), repotest.NewClassRepo(), &repotest.MaterialRepo{})

	_, err := svc.Upload(context.Background(), "teacher-1", &dto.UploadMaterialRequest{
		ClassID: "not-a-class",
		Title:   "Week 1",
		File:    multipartFile(t, "a.txt", "x"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidClassID)
	assert.Equal(t, "Invalid class ID format", apperrors.UserMessage(err, ""))

	entries, _ := os.ReadDir(filepath.Join(dir, "materials"))
	assert.Empty(t, entries)
}

func TestUploadMaterialRemovesFileWhenInsertFails(t *testing.T) {
	classID := objectid.New()
	svc, dir := newMaterialService(t, repotest.NewUserRepo(), repotest.NewClassRepo(&models.Class{ID: classID}),
		&repotest.MaterialRepo{CreateErr: repotest.ErrDB})

	_, err := svc.Upload(context.Background(), "teacher-1", &dto.UploadMaterialRequest{
		ClassID: classID,
		Title:   "Week 1",
		File:    multipartFile(t, "a.txt", "x"),
	})
	assert.ErrorIs(t, err, repotest.ErrDB)

	entries, _ := os.ReadDir(filepath.Join(dir, "materials"))
	assert.Empty(t, entries)
}
