package repositories

import "context"

// Repository aggregates all entity repositories behind one explicitly
// constructed storage handle.
type Repository interface {
	// User domain
	User() UserRepository

	// Course domain
	Course() CourseRepository
	NPTEL() NPTELRepository

	// Portal content
	File() FileRepository
	Admin() AdminRepository
	Help() HelpRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close(ctx context.Context) error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize(ctx context.Context) error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
