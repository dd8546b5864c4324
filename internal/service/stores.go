package service

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// The entity services accept narrow store interfaces instead of concrete
// repositories so business rules stay testable without a database. The
// repository package provides the pgx implementations.

// TeacherStore is the persistence surface the teachers service needs.
type TeacherStore interface {
	GetByID(ctx context.Context, id int) (*model.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*model.Teacher, error)
	GetByResetToken(ctx context.Context, token string) (*model.Teacher, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]model.Teacher, error)
	Create(ctx context.Context, t *model.Teacher) error
	UpdateProfile(ctx context.Context, id int, upd model.UpdateTeacherRequest) (*model.Teacher, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetResetToken(ctx context.Context, id int, token string, expires time.Time) error
	Delete(ctx context.Context, id int) error
}

// StudentStore is the persistence surface the students service needs.
type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	GetByResetToken(ctx context.Context, token string) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	UpdateProfile(ctx context.Context, id int, upd model.UpdateStudentRequest) (*model.Student, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetResetToken(ctx context.Context, id int, token string, expires time.Time) error
	Delete(ctx context.Context, id int) error
	ListRefsByGroupIDs(ctx context.Context, groupIDs []int) ([]model.StudentRef, error)
	ListByGroupID(ctx context.Context, groupID int) ([]model.Student, error)
}

// GroupStore is the persistence surface the groups service needs.
type GroupStore interface {
	GetByID(ctx context.Context, id int) (*model.Group, error)
	GetByToken(ctx context.Context, token string) (*model.Group, error)
	ListByTeacher(ctx context.Context, teacherID int) ([]model.Group, error)
	ListRefs(ctx context.Context) ([]model.GroupRef, error)
	Create(ctx context.Context, g *model.Group) error
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}

// CommentStore is the persistence surface the comments service needs.
type CommentStore interface {
	ListBySolutionID(ctx context.Context, solutionID int) ([]model.Comment, error)
	Create(ctx context.Context, c *model.Comment) error
}

// SolutionStore is the persistence surface for solution submissions. The
// comments service uses only GetByID for reference validation.
type SolutionStore interface {
	GetByID(ctx context.Context, id int) (*model.Solution, error)
	ListByStudentID(ctx context.Context, studentID int) ([]model.Solution, error)
	Create(ctx context.Context, s *model.Solution) error
}

// AccountLookup is the shared read-only capability for cross-entity email
// collision checks. Teachers and students both depend on it instead of on
// each other.
type AccountLookup interface {
	TeacherEmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
	StudentEmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
}
