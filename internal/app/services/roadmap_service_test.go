package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

type fakeRoadmapStore struct {
	nextID int64
	chats  []models.RoadmapChat
}

func (f *fakeRoadmapStore) Create(_ context.Context, chat *models.RoadmapChat) error {
	f.nextID++
	chat.ID = f.nextID
	f.chats = append(f.chats, *chat)
	return nil
}

func (f *fakeRoadmapStore) ListByUser(_ context.Context, userID string) ([]models.RoadmapChat, error) {
	var out []models.RoadmapChat
	for _, chat := range f.chats {
		if chat.UserID == userID {
			out = append(out, chat)
		}
	}
	return out, nil
}

func (f *fakeRoadmapStore) DeleteOwned(_ context.Context, id int64, userID string) error {
	for i, chat := range f.chats {
		if chat.ID == id && chat.UserID == userID {
			f.chats = append(f.chats[:i], f.chats[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRoadmapNotFound
}

func (f *fakeRoadmapStore) DeleteAllByUser(_ context.Context, userID string) (int64, error) {
	var kept []models.RoadmapChat
	var deleted int64
	for _, chat := range f.chats {
		if chat.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, chat)
	}
	f.chats = kept
	return deleted, nil
}

type stubGenerator struct {
	prompt string
	text   string
	err    error
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestGenerateRoadmapStoresResult(t *testing.T) {
	store := &fakeRoadmapStore{}
	gen := &stubGenerator{text: "# Roadmap\nWeek 1: basics"}
	svc := NewRoadmapService(store, gen)

	chat, err := svc.GenerateRoadmap(context.Background(), "user-1", "ada@example.com", &dto.GenerateRoadmapRequest{
		Topic: "Backend Development",
		Goal:  "Junior role in 6 months",
	})

	require.NoError(t, err)
	assert.Equal(t, "# Roadmap\nWeek 1: basics", chat.Roadmap)
	assert.Equal(t, "ada@example.com", chat.UserEmail)
	assert.Contains(t, gen.prompt, `"Backend Development"`)
	assert.Contains(t, gen.prompt, `"Junior role in 6 months"`)
	assert.Len(t, store.chats, 1)
}

func TestGenerateRoadmapDefaultsGoal(t *testing.T) {
	gen := &stubGenerator{text: "roadmap"}
	svc := NewRoadmapService(&fakeRoadmapStore{}, gen)

	_, err := svc.GenerateRoadmap(context.Background(), "user-1", "", &dto.GenerateRoadmapRequest{Topic: "Go"})

	require.NoError(t, err)
	assert.Contains(t, gen.prompt, `"Not provided"`)
}

func TestGenerateRoadmapGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	store := &fakeRoadmapStore{}
	svc := NewRoadmapService(store, gen)

	_, err := svc.GenerateRoadmap(context.Background(), "user-1", "", &dto.GenerateRoadmapRequest{Topic: "Go"})

	assert.ErrorIs(t, err, apperrors.ErrRoadmapGeneration)
	assert.Empty(t, store.chats, "failed generations must not be stored")
}

func TestDeleteRoadmapScopedToOwner(t *testing.T) {
	store := &fakeRoadmapStore{}
	svc := NewRoadmapService(store, &stubGenerator{text: "roadmap"})
	ctx := context.Background()

	chat, err := svc.GenerateRoadmap(ctx, "user-1", "", &dto.GenerateRoadmapRequest{Topic: "Go"})
	require.NoError(t, err)

	err = svc.DeleteRoadmap(ctx, chat.ID, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrRoadmapNotFound)

	err = svc.DeleteRoadmap(ctx, chat.ID, "user-1")
	assert.NoError(t, err)
}

func TestDeleteAllRoadmapsCountsOwnOnly(t *testing.T) {
	store := &fakeRoadmapStore{}
	svc := NewRoadmapService(store, &stubGenerator{text: "roadmap"})
	ctx := context.Background()

	_, err := svc.GenerateRoadmap(ctx, "user-1", "", &dto.GenerateRoadmapRequest{Topic: "Go"})
	require.NoError(t, err)
	_, err = svc.GenerateRoadmap(ctx, "user-1", "", &dto.GenerateRoadmapRequest{Topic: "SQL"})
	require.NoError(t, err)
	_, err = svc.GenerateRoadmap(ctx, "user-2", "", &dto.GenerateRoadmapRequest{Topic: "React"})
	require.NoError(t, err)

	deleted, err := svc.DeleteAllRoadmaps(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := svc.ListRoadmaps(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
