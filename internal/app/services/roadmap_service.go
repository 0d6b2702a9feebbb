package services

import (
	"context"
	"fmt"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/genai"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
)

const roadmapPromptTemplate = `
You are a professional career mentor.
Create a clean structured roadmap for: "%s"

User goal: "%s"

Return in Markdown format with:
1) Overview (2 lines)
2) Skills to learn (bullets)
3) 8-week plan (Week 1 to Week 8)
4) Projects (Beginner to Advanced)
5) Best free resources (YouTube, Docs)
6) Interview prep checklist

Keep it clear and short, not too long.
`

// RoadmapService generates and stores personalized learning roadmaps
type RoadmapService struct {
	roadmapStore repositories.RoadmapStore
	generator    genai.Generator
}

// NewRoadmapService creates a new roadmap service instance
func NewRoadmapService(roadmapStore repositories.RoadmapStore, generator genai.Generator) *RoadmapService {
	return &RoadmapService{
		roadmapStore: roadmapStore,
		generator:    generator,
	}
}

// GenerateRoadmap asks the model for a roadmap on the given topic and stores
// the result in the user's history
func (s *RoadmapService) GenerateRoadmap(ctx context.Context, userID, userEmail string, req *dto.GenerateRoadmapRequest) (*models.RoadmapChat, error) {
	goal := req.Goal
	if goal == "" {
		goal = "Not provided"
	}

	prompt := fmt.Sprintf(roadmapPromptTemplate, req.Topic, goal)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Str("topic", req.Topic).Msg("Roadmap generation failed")
		return nil, apperrors.ErrRoadmapGeneration
	}

	chat := &models.RoadmapChat{
		UserID:    userID,
		UserEmail: userEmail,
		Topic:     req.Topic,
		Goal:      req.Goal,
		Roadmap:   text,
	}

	if err := s.roadmapStore.Create(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

// ListRoadmaps returns the user's roadmap history, newest first
func (s *RoadmapService) ListRoadmaps(ctx context.Context, userID string) ([]models.RoadmapChat, error) {
	return s.roadmapStore.ListByUser(ctx, userID)
}

// DeleteRoadmap removes one roadmap from the user's history
func (s *RoadmapService) DeleteRoadmap(ctx context.Context, id int64, userID string) error {
	return s.roadmapStore.DeleteOwned(ctx, id, userID)
}

// DeleteAllRoadmaps clears the user's roadmap history and reports how many
// entries were removed
func (s *RoadmapService) DeleteAllRoadmaps(ctx context.Context, userID string) (int64, error) {
	return s.roadmapStore.DeleteAllByUser(ctx, userID)
}
