package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// Register creates a new user account.
// POST /user/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Registering user", "email", req.Email)

	if err := h.authService.Register(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Registered"})
}

// Login validates credentials and returns a bearer token. Admin logins
// additionally include the serialized user record.
// POST /user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Logging in user", "email", req.Email)

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Please fill all the fields",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "User already Exists",
		})
	case errors.Is(err, services.ErrUnknownEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Check Your Email",
		})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Check Your Password",
		})
	default:
		h.LogError(c, err, "Auth operation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
