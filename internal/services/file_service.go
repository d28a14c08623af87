package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/storage"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

type fileService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	sink      *storage.DiskSink
}

func NewFileService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, sink *storage.DiskSink) FileService {
	return &fileService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		sink:      sink,
	}
}

// Store writes the blob to disk and records its metadata. Disallowed
// extensions are rejected before any bytes reach the sink.
func (s *fileService) Store(ctx context.Context, upload *FileUpload) (*models.FileRecord, error) {
	if err := s.validator.Validate(&upload.Meta); err != nil {
		return nil, err
	}

	path, err := s.sink.Store(upload.Name, upload.Content)
	if err != nil {
		return nil, err
	}

	record := &models.FileRecord{
		Title:           upload.Meta.Title,
		Subject:         upload.Meta.Subject,
		Semester:        upload.Meta.Semester,
		Unit:            upload.Meta.Unit,
		WorksheetNumber: upload.Meta.WorksheetNumber,
		FileCategory:    upload.Meta.FileCategory,
		FilePath:        path,
		FileMimetype:    upload.Mimetype,
	}

	if err := s.repo.File().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store file metadata: %w", err)
	}

	s.logger.Info("File stored", "file_id", record.ID.Hex(), "path", path, "mimetype", upload.Mimetype)
	return record, nil
}

// List returns all file records, newest first.
func (s *fileService) List(ctx context.Context) ([]*models.FileRecord, error) {
	files, err := s.repo.File().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// Get looks up a file record and opens its blob for streaming.
func (s *fileService) Get(ctx context.Context, id string) (*models.FileRecord, io.ReadCloser, int64, error) {
	record, err := s.repo.File().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil, 0, ErrFileNotFound
		}
		return nil, nil, 0, fmt.Errorf("failed to get file record: %w", err)
	}

	content, size, err := s.sink.Open(record.FilePath)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to open stored blob: %w", err)
	}
	return record, content, size, nil
}
