package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type NPTELHandler struct {
	BaseHandler
	nptelService services.NPTELService
}

func NewNPTELHandler(nptelService services.NPTELService, logger utils.Logger) *NPTELHandler {
	return &NPTELHandler{
		BaseHandler:  NewBaseHandler(logger),
		nptelService: nptelService,
	}
}

// AddAssignment appends questions to a weekly assignment of an NPTEL
// course, creating the course or assignment when first seen.
// POST /api/nptel
func (h *NPTELHandler) AddAssignment(c *gin.Context) {
	var req services.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Adding assignment", "course", req.CourseName, "week_num", req.WeekNum)

	outcome, err := h.nptelService.AddAssignment(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	switch outcome {
	case services.OutcomeParentCreated:
		c.JSON(http.StatusCreated, MessageResponse{Message: "New NPTEL course created"})
	case services.OutcomeChildCreated:
		c.JSON(http.StatusCreated, MessageResponse{Message: "New assignment created"})
	default:
		c.JSON(http.StatusOK, MessageResponse{Message: "Assignment content updated"})
	}
}

// GetCourses lists all NPTEL courses with their assignments.
// GET /nptel-courses
func (h *NPTELHandler) GetCourses(c *gin.Context) {
	courses, err := h.nptelService.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list NPTEL courses")
		c.String(http.StatusInternalServerError, "Error while getting NPTEL courses. Try again later.")
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *NPTELHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Please fill all the fields",
			Details: validationErrors,
		})
		return
	}

	h.LogError(c, err, "NPTEL operation failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Error saving NPTEL course",
	})
}
