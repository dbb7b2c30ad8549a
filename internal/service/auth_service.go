package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"techblog/internal/models"
	"techblog/internal/repository"
)

// Domain errors for auth and authorization flows.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("unauthorized access")
	ErrLoginRequired      = errors.New("login required")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

var _ Auth = (*AuthService)(nil)

// Register hashes the password and creates a new user. A taken username
// (case-sensitive exact match) yields ErrUsernameTaken and leaves the
// existing record untouched.
func (s *AuthService) Register(ctx context.Context, username, password, bio string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.New("username is empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	_, err = s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	id, err := s.users.Create(ctx, username, hash, bio)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, PasswordHash: hash, Bio: bio}, nil
}

// Verify checks a login attempt. A missing username and a wrong password
// both come back as ErrInvalidCredentials, so callers cannot tell whether
// the account exists.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// UserService exposes read-only account lookups.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}
