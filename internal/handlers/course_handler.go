package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type CourseHandler struct {
	BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
	}
}

// AddSubjects appends subjects to a course semester, creating the course or
// semester when first seen. The status code distinguishes creation (201)
// from appending to existing content (200).
// POST /add-subjects
func (h *CourseHandler) AddSubjects(c *gin.Context) {
	var req services.AddSubjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Adding subjects", "course", req.CourseName, "sem_num", req.SemNum)

	outcome, err := h.courseService.AddSubjects(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	switch outcome {
	case services.OutcomeParentCreated:
		c.JSON(http.StatusCreated, MessageResponse{Message: "New course created"})
	case services.OutcomeChildCreated:
		c.JSON(http.StatusCreated, MessageResponse{Message: "New semester created"})
	default:
		c.JSON(http.StatusOK, MessageResponse{Message: "Semester content updated"})
	}
}

// GetCourses lists all courses with their semesters.
// GET /getcourse
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list courses")
		c.String(http.StatusInternalServerError, "Error while getting courses. Try again later.")
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Please fill all the fields",
			Details: validationErrors,
		})
		return
	}

	h.LogError(c, err, "Course operation failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Error saving course",
	})
}
