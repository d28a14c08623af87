package handlers

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
)

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ===== auth =====

type fakeAuthService struct {
	registerErr error
	loginResp   *services.LoginResponse
	loginErr    error
	lastLogin   *services.LoginRequest
}

func (f *fakeAuthService) Register(ctx context.Context, req *services.RegisterRequest) error {
	return f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResponse, error) {
	f.lastLogin = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

// ===== courses =====

type fakeCourseService struct {
	outcome services.AppendOutcome
	err     error
	courses []*models.Course
	lastReq *services.AddSubjectsRequest
}

func (f *fakeCourseService) AddSubjects(ctx context.Context, req *services.AddSubjectsRequest) (services.AppendOutcome, error) {
	f.lastReq = req
	return f.outcome, f.err
}

func (f *fakeCourseService) List(ctx context.Context) ([]*models.Course, error) {
	return f.courses, f.err
}

// ===== files =====

type fakeFileService struct {
	record   *models.FileRecord
	storeErr error
	files    []*models.FileRecord
	listErr  error
	content  string
	getErr   error
}

func (f *fakeFileService) Store(ctx context.Context, upload *services.FileUpload) (*models.FileRecord, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return f.record, nil
}

func (f *fakeFileService) List(ctx context.Context) ([]*models.FileRecord, error) {
	return f.files, f.listErr
}

func (f *fakeFileService) Get(ctx context.Context, id string) (*models.FileRecord, io.ReadCloser, int64, error) {
	if f.getErr != nil {
		return nil, nil, 0, f.getErr
	}
	rc := io.NopCloser(strings.NewReader(f.content))
	return f.record, rc, int64(len(f.content)), nil
}

// ===== admin / help =====

type fakeAdminService struct {
	admin  *models.Admin
	admins []*models.Admin
	err    error
}

func (f *fakeAdminService) Create(ctx context.Context, req *services.CreateAdminRequest) (*models.Admin, error) {
	return f.admin, f.err
}

func (f *fakeAdminService) List(ctx context.Context) ([]*models.Admin, error) {
	return f.admins, f.err
}

type fakeHelpService struct {
	help  *models.Help
	helps []*models.Help
	err   error
}

func (f *fakeHelpService) Create(ctx context.Context, req *services.CreateHelpRequest) (*models.Help, error) {
	return f.help, f.err
}

func (f *fakeHelpService) List(ctx context.Context) ([]*models.Help, error) {
	return f.helps, f.err
}

// ===== service manager =====

type fakeServiceManager struct {
	auth   services.AuthService
	course services.CourseService
	nptel  services.NPTELService
	file   services.FileService
	admin  services.AdminService
	help   services.HelpService
}

func newFakeServiceManager() *fakeServiceManager {
	return &fakeServiceManager{
		auth:   &fakeAuthService{},
		course: &fakeCourseService{},
		nptel:  &fakeNPTELService{},
		file:   &fakeFileService{},
		admin:  &fakeAdminService{},
		help:   &fakeHelpService{},
	}
}

func (m *fakeServiceManager) Auth() services.AuthService     { return m.auth }
func (m *fakeServiceManager) Course() services.CourseService { return m.course }
func (m *fakeServiceManager) NPTEL() services.NPTELService   { return m.nptel }
func (m *fakeServiceManager) File() services.FileService     { return m.file }
func (m *fakeServiceManager) Admin() services.AdminService   { return m.admin }
func (m *fakeServiceManager) Help() services.HelpService     { return m.help }

func (m *fakeServiceManager) Initialize(ctx context.Context) error { return nil }
func (m *fakeServiceManager) Shutdown(ctx context.Context) error   { return nil }
