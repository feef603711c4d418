package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Password bounds enforced on every account creation path. bcrypt ignores
// nothing past 72 bytes and refuses longer input.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("password must be at most %d bytes", MaxPasswordLength)
	ErrInvalidRole        = errors.New("role must be user or admin")
)

// NewAccount describes a user to create.
type NewAccount struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// CreateAccount hashes the password and stores a new active user. Admins are also staff.
func CreateAccount(ctx context.Context, users repository.UserRepository, in NewAccount) (*models.User, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if len(in.Password) > MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		IsActive:     true,
		IsStaff:      role == models.RoleAdmin,
		PasswordHash: string(hashedPassword),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks an email/password pair and returns the matching active user.
func Authenticate(ctx context.Context, users repository.UserRepository, email, password string) (*models.User, error) {
	user, err := users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap administrator unless an account with that email exists.
// Empty credentials disable the bootstrap.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, email, password string, log *zap.Logger) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := users.FindByEmail(ctx, strings.ToLower(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}

	user, err := CreateAccount(ctx, users, NewAccount{Email: email, Name: "Administrator", Password: password, Role: models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	log.Info("Bootstrap admin created", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return nil
}
