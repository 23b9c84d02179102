package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
)

// psql builds statements with PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// IUserRepository defines user persistence used by the services
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	AddAssignedClass(ctx context.Context, userIDs []string, classID string) error
	RemoveAssignedClass(ctx context.Context, userIDs []string, classID string) error
}

// IClassRepository defines class persistence used by the services
type IClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id string) (*models.Class, error)
	Exists(ctx context.Context, id string) (bool, error)
	ListByHeadID(ctx context.Context, headID string) ([]*models.Class, error)
	Delete(ctx context.Context, id string) error
}

// IQuizRepository defines quiz persistence used by the services
type IQuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	DeleteByID(ctx context.Context, id string) (*models.Quiz, error)
	ListByClassIDs(ctx context.Context, classIDs []string) ([]*models.Quiz, error)
}

// IAssignmentRepository defines assignment reads used by the services
type IAssignmentRepository interface {
	ListByClassIDs(ctx context.Context, classIDs []string) ([]*models.Assignment, error)
}

// IMaterialRepository defines material persistence used by the services
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	ListDetailsByClassIDs(ctx context.Context, classIDs []string) ([]*models.MaterialDetails, error)
}

// Transactor runs a function inside a single database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ClassRepository      *ClassRepository
	QuizRepository       *QuizRepository
	AssignmentRepository *AssignmentRepository
	MaterialRepository   *MaterialRepository
	Transactor           Transactor
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		ClassRepository:      NewClassRepository(database),
		QuizRepository:       NewQuizRepository(database),
		AssignmentRepository: NewAssignmentRepository(database),
		MaterialRepository:   NewMaterialRepository(database),
		Transactor:           database,
	}
}
