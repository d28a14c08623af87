package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus-in/studyportal-service/internal/services"
	"github.com/opencampus-in/studyportal-service/internal/utils"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type FileHandler struct {
	BaseHandler
	fileService services.FileService
}

func NewFileHandler(fileService services.FileService, logger utils.Logger) *FileHandler {
	return &FileHandler{
		BaseHandler: NewBaseHandler(logger),
		fileService: fileService,
	}
}

// Upload accepts a multipart file plus its metadata fields and stores both.
// Responses are plain text to match the portal frontend.
// POST /upload
func (h *FileHandler) Upload(c *gin.Context) {
	var meta services.FileMetadata
	if err := c.ShouldBind(&meta); err != nil {
		c.String(http.StatusBadRequest, "Invalid upload metadata.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "A file is required.")
		return
	}

	h.LogRequest(c, "Uploading file", "filename", fileHeader.Filename, "size", fileHeader.Size)

	src, err := fileHeader.Open()
	if err != nil {
		h.LogError(c, err, "Failed to open uploaded file")
		c.String(http.StatusInternalServerError, "Error while uploading file. Try again later.")
		return
	}
	defer src.Close()

	upload := &services.FileUpload{
		Name:     fileHeader.Filename,
		Mimetype: fileHeader.Header.Get("Content-Type"),
		Content:  src,
		Meta:     meta,
	}

	if _, err := h.fileService.Store(c.Request.Context(), upload); err != nil {
		h.handleStoreError(c, err)
		return
	}

	c.String(http.StatusOK, "file uploaded successfully.")
}

// GetAllFiles lists file records, newest first.
// GET /getAllFiles
func (h *FileHandler) GetAllFiles(c *gin.Context) {
	files, err := h.fileService.List(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list files")
		c.String(http.StatusBadRequest, "Error while getting list of files. Try again later.")
		return
	}

	c.JSON(http.StatusOK, files)
}

// Download streams a stored file back with its recorded mime type.
// GET /download/:id
func (h *FileHandler) Download(c *gin.Context) {
	id := c.Param("id")

	h.LogRequest(c, "Downloading file", "file_id", id)

	record, content, size, err := h.fileService.Get(c.Request.Context(), id)
	if err != nil {
		h.LogError(c, err, "Failed to fetch file", "file_id", id)
		c.String(http.StatusBadRequest, "Error while downloading file. Try again later.")
		return
	}
	defer content.Close()

	c.DataFromReader(http.StatusOK, size, record.FileMimetype, content, nil)
}

func (h *FileHandler) handleStoreError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.String(http.StatusBadRequest, "Please fill all the fields.")
		return
	}

	if errors.Is(err, services.ErrUnsupportedFileType) {
		c.String(http.StatusInternalServerError,
			"only upload files with jpg, jpeg, png, pdf, doc, docx, xlsx, xls format.")
		return
	}

	h.LogError(c, err, "Failed to store file")
	c.String(http.StatusInternalServerError, "Error while uploading file. Try again later.")
}
