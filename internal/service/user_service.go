package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/practicum/shareit-api/internal/domain"
	"github.com/practicum/shareit-api/internal/platform/logger"
	"github.com/practicum/shareit-api/internal/store"
)

// UpdateUserParams carries the fields of a partial user update. Nil fields
// were omitted by the caller; blank values are treated the same as omitted.
type UpdateUserParams struct {
	Name  *string
	Email *string
}

// UserService provides user-related operations.
type UserService interface {
	// Register creates a new user. The email must be non-blank and not
	// already in use by another user (case-sensitive comparison).
	Register(ctx context.Context, name, email string) (*domain.User, error)

	// GetByID retrieves a user by their ID.
	// Returns store.ErrUserNotFound if no such user exists.
	GetByID(ctx context.Context, userID int64) (*domain.User, error)

	// GetAll returns all registered users.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Update applies a partial update to an existing user and returns the
	// merged result. Omitted or blank fields are left unchanged. Changing
	// the email to one already used by another user fails validation;
	// keeping the current email is always allowed.
	Update(ctx context.Context, userID int64, params UpdateUserParams) (*domain.User, error)

	// Delete removes a user by their ID.
	// Returns store.ErrUserNotFound if no such user exists.
	Delete(ctx context.Context, userID int64) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService backed by the given store.
func NewUserService(userStore store.UserStore, log *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("%w: userStore cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, name, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(email) == "" {
		log.Warn("user registration rejected", "reason", "blank email")
		return nil, domain.ErrUserEmailEmpty
	}

	taken, err := s.emailExists(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		log.Warn("user registration rejected", "reason", "email already in use")
		return nil, domain.ErrUserEmailTaken
	}

	user, err := s.userStore.Create(ctx, &domain.User{Name: name, Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// GetByID implements UserService.GetByID
func (s *userServiceImpl) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll implements UserService.GetAll
func (s *userServiceImpl) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.userStore.GetAll(ctx)
}

// Update implements UserService.Update
func (s *userServiceImpl) Update(ctx context.Context, userID int64, params UpdateUserParams) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && strings.TrimSpace(*params.Email) != "" {
		newEmail := *params.Email
		if newEmail != user.Email {
			taken, err := s.emailExists(ctx, newEmail, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
			}
			if taken {
				log.Warn("user update rejected", "user_id", userID, "reason", "email already in use")
				return nil, domain.ErrUserEmailTaken
			}
		}
		user.Email = newEmail
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) != "" {
		user.Name = *params.Name
	}

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated", "user_id", updated.ID)
	return updated, nil
}

// Delete implements UserService.Delete. The store-level delete is a no-op
// for absent IDs, so existence is checked here first.
func (s *userServiceImpl) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted", "user_id", userID)
	return nil
}

// emailExists reports whether any user other than excludeID already uses the
// given email. The scan over all users is O(n) per call, which is acceptable
// at this scale.
func (s *userServiceImpl) emailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, user := range users {
		if user.ID != excludeID && user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
