package services

import (
	"errors"
	"fmt"

	"github.com/opencampus-in/studyportal-service/internal/storage"
)

var (
	// ErrUserExists is returned when registration hits an already used email.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and failed password
	// comparison on login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownEmail and ErrWrongPassword refine ErrInvalidCredentials so
	// the login handler can keep the distinct client-facing messages.
	ErrUnknownEmail  = fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
	ErrWrongPassword = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)

	// ErrFileNotFound is returned when a download references a missing id.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFileType is surfaced before any bytes are written.
	ErrUnsupportedFileType = storage.ErrUnsupportedType
)
