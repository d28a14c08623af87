package repositories

import (
	"context"
	"errors"

	"github.com/opencampus-in/studyportal-service/internal/models"
)

// ErrNotFound is returned by every repository when the requested document
// does not exist. Callers test for it with IsNotFoundError.
var ErrNotFound = errors.New("document not found")

// IsNotFoundError reports whether err indicates a missing document.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// UserRepository persists user records and supports lookup by email.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CourseRepository persists course parent documents keyed by course name.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByName(ctx context.Context, courseName string) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]*models.Course, error)
}

// NPTELRepository persists NPTEL course parent documents keyed by course name.
type NPTELRepository interface {
	Create(ctx context.Context, course *models.NPTELCourse) error
	GetByName(ctx context.Context, courseName string) (*models.NPTELCourse, error)
	Update(ctx context.Context, course *models.NPTELCourse) error
	List(ctx context.Context) ([]*models.NPTELCourse, error)
}

// FileRepository persists uploaded file metadata.
type FileRepository interface {
	Create(ctx context.Context, file *models.FileRecord) error
	GetByID(ctx context.Context, id string) (*models.FileRecord, error)
	// List returns all file records ordered by creation time, newest first.
	List(ctx context.Context) ([]*models.FileRecord, error)
}

// AdminRepository persists developer profiles.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	List(ctx context.Context) ([]*models.Admin, error)
}

// HelpRepository persists help/doubt submissions.
type HelpRepository interface {
	Create(ctx context.Context, help *models.Help) error
	List(ctx context.Context) ([]*models.Help, error)
}
