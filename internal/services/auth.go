package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/password"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Issue(ctx context.Context, subject string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

// AuthService handles registration, login, logout and token authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, tokens TokenService) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new inactive user. An empty role registers a plain user.
func (svc *AuthService) Register(ctx context.Context, email, plaintext string, role models.Role) (*models.UserDB, error) {
	if email == "" || plaintext == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	digest, err := hashPassword(svc.hasher, plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.UserDB{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials, marks the user active and returns a session token.
func (svc *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return "", err
	}
	if user == nil || !svc.hasher.Verify(plaintext, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := svc.writer.SetActive(ctx, user.ID, true); err != nil {
		logger.Log.Errorw("failed to activate user", "user_id", user.ID, "err", err)
		return "", err
	}

	token, err := svc.tokens.Issue(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to issue token", "user_id", user.ID, "err", err)
		return "", err
	}

	return token, nil
}

// Logout marks the actor inactive. Outstanding tokens stay valid until they expire.
func (svc *AuthService) Logout(ctx context.Context, actor *models.UserDB) error {
	if err := svc.writer.SetActive(ctx, actor.ID, false); err != nil {
		logger.Log.Errorw("failed to deactivate user", "user_id", actor.ID, "err", err)
		return err
	}
	return nil
}

// Authenticate resolves a bearer token to the stored user it names.
// The is_active flag is not consulted.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.UserDB, error) {
	email, err := svc.tokens.Validate(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve token subject", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown subject", ErrUnauthenticated)
	}

	return user, nil
}

// hashPassword maps an over-long password to ErrInvalidInput.
func hashPassword(hasher PasswordHasher, plaintext string) (string, error) {
	digest, err := hasher.Hash(plaintext)
	if errors.Is(err, password.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return digest, nil
}
