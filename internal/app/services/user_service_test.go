package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Upsert(_ context.Context, user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func createdEvent(id string) *dto.IdentityEvent {
	return &dto.IdentityEvent{
		Type: "user.created",
		Data: dto.IdentityEventData{
			ID:        id,
			FirstName: "Grace",
			LastName:  "Hopper",
			ImageURL:  "https://img.example.com/grace.png",
			EmailAddresses: []dto.IdentityEmailAddress{
				{EmailAddress: "grace@example.com"},
			},
		},
	}
}

func TestHandleIdentityEventCreatesUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	err := svc.HandleIdentityEvent(context.Background(), createdEvent("user_1"))

	require.NoError(t, err)
	user, err := svc.GetUser(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", user.Name)
	assert.Equal(t, "grace@example.com", user.Email)
}

func TestHandleIdentityEventUpdateIsUpsert(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	// An update arriving before the create must still produce the user.
	event := createdEvent("user_2")
	event.Type = "user.updated"

	require.NoError(t, svc.HandleIdentityEvent(context.Background(), event))

	_, err := svc.GetUser(context.Background(), "user_2")
	assert.NoError(t, err)
}

func TestHandleIdentityEventDeleteIsIdempotent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	require.NoError(t, svc.HandleIdentityEvent(context.Background(), createdEvent("user_3")))

	deleteEvent := &dto.IdentityEvent{Type: "user.deleted", Data: dto.IdentityEventData{ID: "user_3"}}
	require.NoError(t, svc.HandleIdentityEvent(context.Background(), deleteEvent))
	require.NoError(t, svc.HandleIdentityEvent(context.Background(), deleteEvent), "replayed delete must not fail")

	_, err := svc.GetUser(context.Background(), "user_3")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestHandleIdentityEventIgnoresUnknownTypes(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.HandleIdentityEvent(context.Background(), &dto.IdentityEvent{
		Type: "session.created",
		Data: dto.IdentityEventData{ID: "user_4"},
	})

	assert.NoError(t, err)
}

func TestHandleIdentityEventRequiresUserID(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	err := svc.HandleIdentityEvent(context.Background(), &dto.IdentityEvent{Type: "user.created"})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
