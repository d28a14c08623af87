package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/storage"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

// ServiceManagerConfig holds dependencies shared by all services.
type ServiceManagerConfig struct {
	Repo      repositories.Repository
	Logger    *slog.Logger
	Validator *validator.Validator
	Tokens    *TokenIssuer
	Sink      *storage.DiskSink
}

// serviceManager implements ServiceManager
type serviceManager struct {
	config ServiceManagerConfig

	authService   AuthService
	courseService CourseService
	nptelService  NPTELService
	fileService   FileService
	adminService  AdminService
	helpService   HelpService

	initialized bool
	mu          sync.RWMutex
}

func NewServiceManager(config ServiceManagerConfig) ServiceManager {
	return &serviceManager{config: config}
}

// Initialize constructs all services and verifies the storage handle is
// reachable before the router starts accepting traffic.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if sm.config.Repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.config.Tokens == nil {
		return fmt.Errorf("token issuer is required")
	}
	if sm.config.Sink == nil {
		return fmt.Errorf("file sink is required")
	}

	sm.config.Logger.Info("Initializing services")

	sm.authService = NewAuthService(sm.config.Repo, sm.config.Logger, sm.config.Validator, sm.config.Tokens)
	sm.courseService = NewCourseService(sm.config.Repo, sm.config.Logger, sm.config.Validator)
	sm.nptelService = NewNPTELService(sm.config.Repo, sm.config.Logger, sm.config.Validator)
	sm.fileService = NewFileService(sm.config.Repo, sm.config.Logger, sm.config.Validator, sm.config.Sink)
	sm.adminService = NewAdminService(sm.config.Repo, sm.config.Logger, sm.config.Validator)
	sm.helpService = NewHelpService(sm.config.Repo, sm.config.Logger, sm.config.Validator)

	if err := sm.config.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}

	sm.initialized = true
	sm.config.Logger.Info("Services initialized successfully")
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	sm.config.Logger.Info("Shutting down services")
	sm.initialized = false
	return nil
}

func (sm *serviceManager) Auth() AuthService     { return sm.authService }
func (sm *serviceManager) Course() CourseService { return sm.courseService }
func (sm *serviceManager) NPTEL() NPTELService   { return sm.nptelService }
func (sm *serviceManager) File() FileService     { return sm.fileService }
func (sm *serviceManager) Admin() AdminService   { return sm.adminService }
func (sm *serviceManager) Help() HelpService     { return sm.helpService }
