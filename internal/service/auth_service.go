package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// AuthService resolves credentials to exactly one user.
type AuthService interface {
	Register(ctx context.Context, username, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	ExternalLogin(ctx context.Context, provider model.Provider, subjectID string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a local user with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role != model.RoleCompany {
		role = model.RoleCandidate
	}

	user := &model.User{
		Username:     &username,
		PasswordHash: &hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a local user. Unknown usernames and wrong
// passwords return the same error value.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, password) {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}

// ExternalLogin resolves a provider subject id to a user, creating one
// on first login.
func (s *authService) ExternalLogin(ctx context.Context, provider model.Provider, subjectID string) (*model.User, error) {
	user, _, err := s.userRepo.FindOrCreateByExternalID(ctx, provider, subjectID)
	if err != nil {
		return nil, fmt.Errorf("resolve external identity: %w", err)
	}
	return user, nil
}
