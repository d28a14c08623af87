package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencampus-in/studyportal-service/internal/repositories"
)

const queryTimeout = 10 * time.Second

// MongoRepository implements the main Repository interface over a single
// mongo database handle.
type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database

	// Repository instances
	user   repositories.UserRepository
	course repositories.CourseRepository
	nptel  repositories.NPTELRepository
	file   repositories.FileRepository
	admin  repositories.AdminRepository
	help   repositories.HelpRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	Client   *mongo.Client
	Database string
}

// NewMongoRepository creates a new repository manager with all sub-repositories
func NewMongoRepository(config RepositoryConfig) repositories.Repository {
	db := config.Client.Database(config.Database)

	repo := &MongoRepository{
		client: config.Client,
		db:     db,
	}

	repo.user = NewUserMongo(db)
	repo.course = NewCourseMongo(db)
	repo.nptel = NewNPTELMongo(db)
	repo.file = NewFileMongo(db)
	repo.admin = NewAdminMongo(db)
	repo.help = NewHelpMongo(db)

	return repo
}

func (r *MongoRepository) User() repositories.UserRepository     { return r.user }
func (r *MongoRepository) Course() repositories.CourseRepository { return r.course }
func (r *MongoRepository) NPTEL() repositories.NPTELRepository   { return r.nptel }
func (r *MongoRepository) File() repositories.FileRepository     { return r.file }
func (r *MongoRepository) Admin() repositories.AdminRepository   { return r.admin }
func (r *MongoRepository) Help() repositories.HelpRepository     { return r.help }

func (r *MongoRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.client.Ping(ctx, nil)
}

func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// repositoryManager implements repositories.RepositoryManager
type repositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a repository manager for lifecycle handling
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

func (m *repositoryManager) Initialize(ctx context.Context) error {
	if m.config.Client == nil {
		return fmt.Errorf("mongo client is required")
	}
	if m.config.Database == "" {
		return fmt.Errorf("database name is required")
	}

	m.repo = NewMongoRepository(m.config)

	// Verify connectivity before handing the repository out
	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repositories not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close(ctx)
}

// handleDBError is a package-level helper for wrapping database errors.
// mongo.ErrNoDocuments is normalized to repositories.ErrNotFound so callers
// never depend on driver error types.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("%s: %w", operation, repositories.ErrNotFound)
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}
