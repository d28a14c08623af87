package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type adminService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAdminService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AdminService {
	return &adminService{repo: repo, logger: logger, validator: validator}
}

func (s *adminService) Create(ctx context.Context, req *CreateAdminRequest) (*models.Admin, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		GitHub:   req.GitHub,
		LinkedIn: req.LinkedIn,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.Admin().Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Developer profile created", "admin_id", admin.ID.Hex(), "name", admin.Name)
	return admin, nil
}

func (s *adminService) List(ctx context.Context) ([]*models.Admin, error) {
	admins, err := s.repo.Admin().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}
