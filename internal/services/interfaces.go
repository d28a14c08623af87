package services

import (
	"context"
	"io"

	"github.com/opencampus-in/studyportal-service/internal/models"
)

// ===== REQUEST/RESPONSE DTOs =====

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
	// CPassword must be present but is not compared to Password here;
	// equality is enforced client-side.
	CPassword string `json:"cpassword" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/// LoginData is asymmetric on purpose: admin clients additionally receive the
// serialized user record, regular clients only the token.
type LoginData struct {
	User  *models.PublicUser `json:"user,omitempty"`
	Token string             `json:"token"`
}

type LoginResponse struct {
	Data LoginData `json:"data"`
}

type AddSubjectsRequest struct {
	CourseName string   `json:"courseName" validate:"required"`
	SemNum     int      `json:"sem_num" validate:"required"`
	Link       string   `json:"link"`
	Subjects   []string `json:"subs" validate:"required"`
}

type AddAssignmentRequest struct {
	CourseName string            `json:"courseName" validate:"required"`
	Link       string            `json:"link"`
	WeekNum    int               `json:"weekNum" validate:"required"`
	Questions  []models.Question `json:"questions" validate:"required"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	ImageURL string `json:"image_url"`
}

type CreateHelpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// FileMetadata carries the form fields accompanying an upload.
type FileMetadata struct {
	Title           string `form:"title" validate:"required"`
	Subject         string `form:"subject" validate:"required"`
	Semester        string `form:"semester" validate:"required"`
	Unit            string `form:"unit" validate:"required"`
	WorksheetNumber string `form:"worksheet_number" validate:"required"`
	FileCategory    string `form:"file_category" validate:"required"`
}

// FileUpload bundles the blob and its metadata for storage.
type FileUpload struct {
	Name     string
	Mimetype string
	Content  io.Reader
	Meta     FileMetadata
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) error
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

type CourseService interface {
	AddSubjects(ctx context.Context, req *AddSubjectsRequest) (AppendOutcome, error)
	List(ctx context.Context) ([]*models.Course, error)
}

type NPTELService interface {
	AddAssignment(ctx context.Context, req *AddAssignmentRequest) (AppendOutcome, error)
	List(ctx context.Context) ([]*models.NPTELCourse, error)
}

type FileService interface {
	Store(ctx context.Context, upload *FileUpload) (*models.FileRecord, error)
	List(ctx context.Context) ([]*models.FileRecord, error)
	// Get returns the stored metadata plus a reader over the blob and its
	// size in bytes. The caller closes the reader.
	Get(ctx context.Context, id string) (*models.FileRecord, io.ReadCloser, int64, error)
}

type AdminService interface {
	Create(ctx context.Context, req *CreateAdminRequest) (*models.Admin, error)
	List(ctx context.Context) ([]*models.Admin, error)
}

type HelpService interface {
	Create(ctx context.Context, req *CreateHelpRequest) (*models.Help, error)
	List(ctx context.Context) ([]*models.Help, error)
}

// ServiceManager provides access to all services with lifecycle management.
type ServiceManager interface {
	Auth() AuthService
	Course() CourseService
	NPTEL() NPTELService
	File() FileService
	Admin() AdminService
	Help() HelpService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
