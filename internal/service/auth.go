package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/selectshop/selectshop-go/internal/crypto"
	"github.com/selectshop/selectshop-go/internal/model"
	"github.com/selectshop/selectshop-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameInvalid    = errors.New("username must be 4-10 lowercase letters and digits")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrBadAdminToken      = errors.New("invalid admin signup token")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9]{4,10}$`)

// AuthService handles signup and login.
type AuthService struct {
	users      repository.UserStore
	jwtSecret  string
	jwtExpiry  time.Duration
	adminToken string
}

// NewAuthService creates a new AuthService. adminToken gates admin signups.
func NewAuthService(users repository.UserStore, secret string, expiry time.Duration, adminToken string) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		adminToken: adminToken,
	}
}

// Signup creates a new user account.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	if req.Username == "" {
		return model.UserResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}
	if !usernamePattern.MatchString(req.Username) {
		return model.UserResponse{}, ErrUsernameInvalid
	}
	if len(req.Password) < 8 {
		return model.UserResponse{}, ErrPasswordTooShort
	}

	role := model.RoleUser
	if req.Admin {
		if req.AdminToken != s.adminToken || s.adminToken == "" {
			return model.UserResponse{}, ErrBadAdminToken
		}
		role = model.RoleAdmin
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login authenticates a user and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.Username, user.Role, s.jwtSecret, s.jwtExpiry)
}
