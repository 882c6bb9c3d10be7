package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		userRepository: storages.UserRepository,
		logger:         logger,
	}
}

// CreateUser stores a new user. An email that is already registered is
// rejected with [store.ErrEmailAlreadyExists] before the insert; the unique
// constraint catches concurrent duplicates.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if err := s.checkEmailFree(ctx, user.Email, 0); err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// UpdateUser applies the non-nil fields of patch.
func (s *userService) UpdateUser(ctx context.Context, userID int64, patch models.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		user.Name = *patch.Name
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if strings.TrimSpace(*patch.Email) == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		if err := s.checkEmailFree(ctx, *patch.Email, userID); err != nil {
			return models.User{}, err
		}
		user.Email = *patch.Email
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}

func (s *userService) checkEmailFree(ctx context.Context, email string, exceptUserID int64) error {
	taken, err := s.userRepository.EmailTaken(ctx, email, exceptUserID)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %s", store.ErrEmailAlreadyExists, email)
	}
	return nil
}
