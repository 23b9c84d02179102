// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

var (
	_ repositories.IUserRepository       = (*UserRepo)(nil)
	_ repositories.IClassRepository      = (*ClassRepo)(nil)
	_ repositories.IQuizRepository       = (*QuizRepo)(nil)
	_ repositories.IAssignmentRepository = (*AssignmentRepo)(nil)
	_ repositories.IMaterialRepository   = (*MaterialRepo)(nil)
	_ repositories.Transactor            = (*Tx)(nil)
)

// ErrDB stands in for an unexpected database failure
var ErrDB = errors.New("connection reset by peer")

// UserRepo is an in-memory user repository
type UserRepo struct {
	mu        sync.Mutex
	Users     map[string]*models.User
	CreateErr error
}

// NewUserRepo returns a UserRepo holding users
func NewUserRepo(users ...*models.User) *UserRepo {
	r := &UserRepo{Users: map[string]*models.User{}}
	for _, u := range users {
		r.Users[u.ID] = u
	}
	return r
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, u := range r.Users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.Users[user.ID] = user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.Users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *UserRepo) AddAssignedClass(_ context.Context, userIDs []string, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range userIDs {
		if u, ok := r.Users[id]; ok && !u.HasClass(classID) {
			u.AssignedClasses = append(u.AssignedClasses, classID)
		}
	}
	return nil
}

func (r *UserRepo) RemoveAssignedClass(_ context.Context, userIDs []string, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range userIDs {
		u, ok := r.Users[id]
		if !ok {
			continue
		}
		kept := u.AssignedClasses[:0]
		for _, c := range u.AssignedClasses {
			if c != classID {
				kept = append(kept, c)
			}
		}
		u.AssignedClasses = kept
	}
	return nil
}

// ClassRepo is an in-memory class repository
type ClassRepo struct {
	mu        sync.Mutex
	Classes   map[string]*models.Class
	DeleteErr error
}

// NewClassRepo returns a ClassRepo holding classes
func NewClassRepo(classes ...*models.Class) *ClassRepo {
	r := &ClassRepo{Classes: map[string]*models.Class{}}
	for _, c := range classes {
		r.Classes[c.ID] = c
	}
	return r
}

func (r *ClassRepo) Create(_ context.Context, class *models.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Classes[class.ID] = class
	return nil
}

func (r *ClassRepo) GetByID(_ context.Context, id string) (*models.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.Classes[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrClassNotFound
}

func (r *ClassRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Classes[id]
	return ok, nil
}

func (r *ClassRepo) ListByHeadID(_ context.Context, headID string) ([]*models.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Class{}
	for _, c := range r.Classes {
		if c.HeadID != nil && *c.HeadID == headID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClassRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	if _, ok := r.Classes[id]; !ok {
		return apperrors.ErrClassNotFound
	}
	delete(r.Classes, id)
	return nil
}

// QuizRepo is an in-memory quiz repository. Deletes counts DeleteByID calls.
type QuizRepo struct {
	mu      sync.Mutex
	Quizzes map[string]*models.Quiz
	ListErr error
	Deletes int
}

// NewQuizRepo returns a QuizRepo holding quizzes
func NewQuizRepo(quizzes ...*models.Quiz) *QuizRepo {
	r := &QuizRepo{Quizzes: map[string]*models.Quiz{}}
	for _, q := range quizzes {
		r.Quizzes[q.ID] = q
	}
	return r
}

func (r *QuizRepo) Create(_ context.Context, quiz *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Quizzes[quiz.ID] = quiz
	return nil
}

func (r *QuizRepo) DeleteByID(_ context.Context, id string) (*models.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deletes++
	q, ok := r.Quizzes[id]
	if !ok {
		return nil, apperrors.ErrQuizNotFound
	}
	delete(r.Quizzes, id)
	return q, nil
}

func (r *QuizRepo) ListByClassIDs(_ context.Context, classIDs []string) ([]*models.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := []*models.Quiz{}
	for _, q := range r.Quizzes {
		for _, id := range classIDs {
			if q.ClassID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

// AssignmentRepo is an in-memory assignment repository
type AssignmentRepo struct {
	Assignments []*models.Assignment
}

func (r *AssignmentRepo) ListByClassIDs(_ context.Context, classIDs []string) ([]*models.Assignment, error) {
	out := []*models.Assignment{}
	for _, a := range r.Assignments {
		for _, id := range classIDs {
			if a.ClassID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// MaterialRepo is an in-memory material repository
type MaterialRepo struct {
	Materials []*models.MaterialDetails
	Created   []*models.Material
	CreateErr error
}

func (r *MaterialRepo) Create(_ context.Context, material *models.Material) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.Created = append(r.Created, material)
	return nil
}

func (r *MaterialRepo) ListDetailsByClassIDs(_ context.Context, classIDs []string) ([]*models.MaterialDetails, error) {
	out := []*models.MaterialDetails{}
	for _, m := range r.Materials {
		for _, id := range classIDs {
			if m.ClassID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// Tx runs fn directly and counts the calls
type Tx struct {
	Calls int
}

// WithTransaction implements repositories.Transactor
func (t *Tx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
