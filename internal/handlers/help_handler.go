package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type HelpHandler struct {
	BaseHandler
	helpService services.HelpService
}

func NewHelpHandler(helpService services.HelpService, logger utils.Logger) *HelpHandler {
	return &HelpHandler{
		BaseHandler: NewBaseHandler(logger),
		helpService: helpService,
	}
}

// UploadHelp stores a doubt submitted through the help form.
// POST /upload-help
func (h *HelpHandler) UploadHelp(c *gin.Context) {
	var req services.CreateHelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request payload.")
		return
	}

	h.LogRequest(c, "Submitting doubt", "subject", req.Subject)

	help, err := h.helpService.Create(c.Request.Context(), &req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Please fill all the fields",
				Details: validationErrors,
			})
			return
		}
		h.LogError(c, err, "Failed to store doubt")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, help)
}

// GetDoubts lists all submitted doubts.
// GET /get-doubts
func (h *HelpHandler) GetDoubts(c *gin.Context) {
	helps, err := h.helpService.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list doubts")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, helps)
}
