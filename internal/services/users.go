package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/policy"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
)

// UserService implements user management on behalf of an authenticated actor.
type UserService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		hasher: hasher,
	}
}

// List returns every user, active or not.
func (svc *UserService) List(ctx context.Context, actor *models.UserDB) ([]models.UserDB, error) {
	if err := authorize(actor, policy.ListAllUsers, uuid.Nil); err != nil {
		return nil, err
	}

	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Me returns the actor's own record.
func (svc *UserService) Me(ctx context.Context, actor *models.UserDB) (*models.UserDB, error) {
	if err := authorize(actor, policy.ReadSelf, actor.ID); err != nil {
		return nil, err
	}
	return actor, nil
}

// Get returns any user by id.
func (svc *UserService) Get(ctx context.Context, actor *models.UserDB, id uuid.UUID) (*models.UserDB, error) {
	if err := authorize(actor, policy.ReadAnyUser, id); err != nil {
		return nil, err
	}
	return svc.load(ctx, id)
}

// Delete removes a user. Their blogs are kept.
func (svc *UserService) Delete(ctx context.Context, actor *models.UserDB, id uuid.UUID) error {
	if err := authorize(actor, policy.DeleteUser, id); err != nil {
		return err
	}

	err := svc.writer.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}

	logger.Log.Infow("user deleted", "user_id", id, "actor_id", actor.ID)
	return nil
}

// UpdateMe changes the actor's email and/or password. At least one must be given.
func (svc *UserService) UpdateMe(ctx context.Context, actor *models.UserDB, email, plaintext *string) (*models.UserDB, error) {
	if err := authorize(actor, policy.UpdateOwnProfile, actor.ID); err != nil {
		return nil, err
	}
	if email == nil && plaintext == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	updated := *actor

	if email != nil {
		if *email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
		}
		if *email != actor.Email {
			existing, err := svc.reader.GetByEmail(ctx, *email)
			if err != nil {
				logger.Log.Errorw("failed to check email", "err", err)
				return nil, err
			}
			if existing != nil {
				return nil, ErrUserAlreadyExists
			}
		}
		updated.Email = *email
	}

	if plaintext != nil {
		if *plaintext == "" {
			return nil, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
		}
		digest, err := hashPassword(svc.hasher, *plaintext)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = digest
	}

	if err := svc.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateRole assigns a new role to any user.
func (svc *UserService) UpdateRole(ctx context.Context, actor *models.UserDB, id uuid.UUID, role models.Role) (*models.UserDB, error) {
	if err := authorize(actor, policy.UpdateAnyRole, id); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	user, err := svc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := svc.save(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Infow("user role changed", "user_id", id, "role", role, "actor_id", actor.ID)
	return user, nil
}

func (svc *UserService) load(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (svc *UserService) save(ctx context.Context, user *models.UserDB) error {
	err := svc.writer.Update(ctx, user)
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return ErrUserAlreadyExists
	case errors.Is(err, repositories.ErrNotFound):
		return ErrUserNotFound
	case err != nil:
		logger.Log.Errorw("failed to update user", "user_id", user.ID, "err", err)
		return err
	}
	return nil
}
