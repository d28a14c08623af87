package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type courseService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	engine    appendEngine[models.Course, models.Semester, string, string]
}

func NewCourseService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) CourseService {
	s := &courseService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}

	s.engine = appendEngine[models.Course, models.Semester, string, string]{
		hooks: appendHooks[models.Course, models.Semester, string, string]{
			findParent: func(ctx context.Context, key string) (*models.Course, error) {
				return repo.Course().GetByName(ctx, key)
			},
			createParent: func(ctx context.Context, c *models.Course) error {
				return repo.Course().Create(ctx, c)
			},
			saveParent: func(ctx context.Context, c *models.Course) error {
				return repo.Course().Update(ctx, c)
			},
			newParent: func(key string, childKey int, link string, subs []string) *models.Course {
				return &models.Course{
					CourseName: key,
					Semesters: []models.Semester{
						{SemNum: childKey, Link: link, Subjects: subs},
					},
				}
			},
			newChild: func(childKey int, subs []string) models.Semester {
				return models.Semester{SemNum: childKey, Subjects: subs}
			},
			children: func(c *models.Course) []models.Semester { return c.Semesters },
			setChildren: func(c *models.Course, sems []models.Semester) {
				c.Semesters = sems
			},
			childKey: func(sem models.Semester) int { return sem.SemNum },
			items:    func(sem models.Semester) []string { return sem.Subjects },
			setItems: func(sem *models.Semester, subs []string) {
				sem.Subjects = subs
			},
		},
	}
	return s
}

// AddSubjects appends subjects to the semester entry of a course, creating
// the course and/or semester on first sight.
func (s *courseService) AddSubjects(ctx context.Context, req *AddSubjectsRequest) (AppendOutcome, error) {
	if err := s.validator.Validate(req); err != nil {
		return "", err
	}

	s.logger.Info("Adding subjects", "course", req.CourseName, "sem_num", req.SemNum, "count", len(req.Subjects))

	outcome, err := s.engine.Apply(ctx, req.CourseName, req.SemNum, req.Subjects, req.Link)
	if err != nil {
		return "", fmt.Errorf("failed to add subjects: %w", err)
	}
	return outcome, nil
}

func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.repo.Course().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}
