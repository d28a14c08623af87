package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
	"github.com/opencampus-in/studyportal-service/internal/validator"
)

// bcryptCost balances hashing time against login latency.
const bcryptCost = 12

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	tokens    *TokenIssuer
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, tokens *TokenIssuer) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		tokens:    tokens,
	}
}

// Register stores a new user with a bcrypt password hash. Email is the
// uniqueness key; a duplicate registration never creates a second record.
func (s *authService) Register(ctx context.Context, req *RegisterRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: string(hash),
		Role:     models.RoleUser,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID.Hex(), "email", user.Email)
	return nil
}

// Login validates credentials and issues a bearer token. Admin users get
// their serialized record alongside the token; regular users only the token.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID.Hex(), "role", user.Role)

	resp := &LoginResponse{Data: LoginData{Token: token}}
	if user.Role == models.RoleAdmin {
		pub := user.Public()
		resp.Data.User = &pub
	}
	return resp, nil
}
