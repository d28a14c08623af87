package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type AdminHandler struct {
	BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  NewBaseHandler(logger),
		adminService: adminService,
	}
}

// AddDeveloper creates a developer profile record.
// POST /add-developer
func (h *AdminHandler) AddDeveloper(c *gin.Context) {
	var req services.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request payload.")
		return
	}

	h.LogRequest(c, "Adding developer", "name", req.Name)

	admin, err := h.adminService.Create(c.Request.Context(), &req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Please fill all the fields",
				Details: validationErrors,
			})
			return
		}
		h.LogError(c, err, "Failed to create developer")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, admin)
}

// GetDevelopers lists all developer profiles.
// GET /developers
func (h *AdminHandler) GetDevelopers(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list developers")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, admins)
}
