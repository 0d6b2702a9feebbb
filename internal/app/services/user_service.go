package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
)

// UserService mirrors identity-provider accounts into the local users table
type UserService struct {
	userStore repositories.UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore repositories.UserStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

// GetUser returns one user profile
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// HandleIdentityEvent applies a provider webhook event to the local mirror.
// Events are replayed at-least-once by the provider, so every branch is
// idempotent.
func (s *UserService) HandleIdentityEvent(ctx context.Context, event *dto.IdentityEvent) error {
	if event.Data.ID == "" {
		return apperrors.NewValidationError("event data has no user id", []string{"data.id"})
	}

	switch event.Type {
	case "user.created", "user.updated":
		name := strings.TrimSpace(fmt.Sprintf("%s %s", event.Data.FirstName, event.Data.LastName))
		user := &models.User{
			ID:    event.Data.ID,
			Name:  name,
			Email: event.Data.PrimaryEmail(),
			Image: event.Data.ImageURL,
		}
		if err := s.userStore.Upsert(ctx, user); err != nil {
			return err
		}

		logger.Info().Str("userId", user.ID).Str("event", event.Type).Msg("User synced")
		return nil

	case "user.deleted":
		if err := s.userStore.Delete(ctx, event.Data.ID); err != nil {
			return err
		}

		logger.Info().Str("userId", event.Data.ID).Msg("User removed")
		return nil

	default:
		// Unknown event types are acknowledged so the provider stops
		// retrying them.
		logger.Warn().Str("event", event.Type).Msg("Ignoring unhandled identity event")
		return nil
	}
}
