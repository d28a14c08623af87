package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type nptelService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	engine    appendEngine[models.NPTELCourse, models.Assignment, models.Question, string]
}

func NewNPTELService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) NPTELService {
	s := &nptelService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}

	s.engine = appendEngine[models.NPTELCourse, models.Assignment, models.Question, string]{
		hooks: appendHooks[models.NPTELCourse, models.Assignment, models.Question, string]{
			findParent: func(ctx context.Context, key string) (*models.NPTELCourse, error) {
				return repo.NPTEL().GetByName(ctx, key)
			},
			createParent: func(ctx context.Context, c *models.NPTELCourse) error {
				return repo.NPTEL().Create(ctx, c)
			},
			saveParent: func(ctx context.Context, c *models.NPTELCourse) error {
				return repo.NPTEL().Update(ctx, c)
			},
			// The course link lives on the parent for NPTEL courses, not on
			// the weekly assignment entry.
			newParent: func(key string, childKey int, link string, questions []models.Question) *models.NPTELCourse {
				return &models.NPTELCourse{
					CourseName: key,
					Link:       link,
					Assignments: []models.Assignment{
						{WeekNum: childKey, Content: questions},
					},
				}
			},
			newChild: func(childKey int, questions []models.Question) models.Assignment {
				return models.Assignment{WeekNum: childKey, Content: questions}
			},
			children: func(c *models.NPTELCourse) []models.Assignment { return c.Assignments },
			setChildren: func(c *models.NPTELCourse, as []models.Assignment) {
				c.Assignments = as
			},
			childKey: func(a models.Assignment) int { return a.WeekNum },
			items:    func(a models.Assignment) []models.Question { return a.Content },
			setItems: func(a *models.Assignment, qs []models.Question) {
				a.Content = qs
			},
		},
	}
	return s
}

// AddAssignment appends questions to the weekly assignment of an NPTEL
// course, creating the course and/or assignment on first sight.
func (s *nptelService) AddAssignment(ctx context.Context, req *AddAssignmentRequest) (AppendOutcome, error) {
	if err := s.validator.Validate(req); err != nil {
		return "", err
	}

	s.logger.Info("Adding assignment questions", "course", req.CourseName, "week_num", req.WeekNum, "count", len(req.Questions))

	outcome, err := s.engine.Apply(ctx, req.CourseName, req.WeekNum, req.Questions, req.Link)
	if err != nil {
		return "", fmt.Errorf("failed to add assignment: %w", err)
	}
	return outcome, nil
}

func (s *nptelService) List(ctx context.Context) ([]*models.NPTELCourse, error) {
	courses, err := s.repo.NPTEL().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nptel courses: %w", err)
	}
	return courses, nil
}
