package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type helpService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewHelpService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) HelpService {
	return &helpService{repo: repo, logger: logger, validator: validator}
}

func (s *helpService) Create(ctx context.Context, req *CreateHelpRequest) (*models.Help, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	help := &models.Help{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Question: req.Question,
	}

	if err := s.repo.Help().Create(ctx, help); err != nil {
		return nil, fmt.Errorf("failed to create help entry: %w", err)
	}

	s.logger.Info("Doubt submitted", "help_id", help.ID.Hex(), "subject", help.Subject)
	return help, nil
}

func (s *helpService) List(ctx context.Context) ([]*models.Help, error) {
	helps, err := s.repo.Help().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list help entries: %w", err)
	}
	return helps, nil
}
