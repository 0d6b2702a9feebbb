package services

import (
	"context"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
)

// TestimonialService handles learner testimonials
type TestimonialService struct {
	testimonialStore repositories.TestimonialStore
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(testimonialStore repositories.TestimonialStore) *TestimonialService {
	return &TestimonialService{
		testimonialStore: testimonialStore,
	}
}

// AddTestimonial stores a testimonial from the authenticated user
func (s *TestimonialService) AddTestimonial(ctx context.Context, userID string, req *dto.AddTestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		UserID:      userID,
		Name:        req.Name,
		Role:        req.Role,
		Message:     req.Message,
		Avatar:      req.Avatar,
		Rating:      req.Rating,
		Achievement: req.Achievement,
	}

	if t.Role == "" {
		t.Role = "Learner"
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.Achievement == "" {
		t.Achievement = "Verified Learner"
	}

	if err := s.testimonialStore.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// ListTestimonials returns all testimonials, newest first
func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.testimonialStore.List(ctx)
}
