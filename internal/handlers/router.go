package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
)

type HandlerManager struct {
	authHandler   *AuthHandler
	courseHandler *CourseHandler
	nptelHandler  *NPTELHandler
	fileHandler   *FileHandler
	adminHandler  *AdminHandler
	helpHandler   *HelpHandler

	maxUploadBytes int64
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	maxUploadBytes int64,
) *HandlerManager {
	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), logger),
		courseHandler:  NewCourseHandler(serviceManager.Course(), logger),
		nptelHandler:   NewNPTELHandler(serviceManager.NPTEL(), logger),
		fileHandler:    NewFileHandler(serviceManager.File(), logger),
		adminHandler:   NewAdminHandler(serviceManager.Admin(), logger),
		helpHandler:    NewHelpHandler(serviceManager.Help(), logger),
		maxUploadBytes: maxUploadBytes,
	}
}

// SetupRoutes sets up all API routes. Every route is an independent,
// stateless request/response handler.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello From Server")
	})

	// User routes
	router.POST("/user/register", hm.authHandler.Register)
	router.POST("/user/login", hm.authHandler.Login)

	// Developer profile routes
	router.POST("/add-developer", hm.adminHandler.AddDeveloper)
	router.GET("/developers", hm.adminHandler.GetDevelopers)

	// File routes
	router.POST("/upload", MaxBodySizeMiddleware(hm.maxUploadBytes), hm.fileHandler.Upload)
	router.GET("/getAllFiles", hm.fileHandler.GetAllFiles)
	router.GET("/download/:id", hm.fileHandler.Download)

	// Course routes
	router.POST("/add-subjects", hm.courseHandler.AddSubjects)
	router.GET("/getcourse", hm.courseHandler.GetCourses)

	// Help routes
	router.POST("/upload-help", hm.helpHandler.UploadHelp)
	router.GET("/get-doubts", hm.helpHandler.GetDoubts)

	// NPTEL routes
	router.GET("/nptel-courses", hm.nptelHandler.GetCourses)
	router.POST("/api/nptel", hm.nptelHandler.AddAssignment)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "studyportal-service",
		})
	})
}
