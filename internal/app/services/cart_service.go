package services

import (
	"context"

	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
)

// CartService handles student cart operations
type CartService struct {
	cartStore   repositories.CartStore
	courseStore repositories.CourseStore
}

// NewCartService creates a new cart service instance
func NewCartService(cartStore repositories.CartStore, courseStore repositories.CourseStore) *CartService {
	return &CartService{
		cartStore:   cartStore,
		courseStore: courseStore,
	}
}

// ToggleCourse flips the course's membership in the student's cart and
// reports the resulting state. Only approved courses can be added.
func (s *CartService) ToggleCourse(ctx context.Context, studentID string, courseID int64) (*dto.ToggleCartResponse, error) {
	if _, err := s.courseStore.GetApprovedByID(ctx, courseID); err != nil {
		return nil, err
	}

	inCart, err := s.cartStore.Toggle(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleCartResponse{
		CourseID: courseID,
		InCart:   inCart,
	}, nil
}

// GetCart returns the student's cart resolved against live course data.
// Courses deleted since they were added simply drop out of the view.
func (s *CartService) GetCart(ctx context.Context, studentID string) (*dto.CartResponse, error) {
	items, err := s.cartStore.GetResolved(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CartResponse{
		Items: make([]dto.CartEntry, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.CartEntry{
			CourseID:     item.CourseID,
			Title:        item.Title,
			Price:        item.Price,
			ThumbnailURL: item.ThumbnailURL,
			Duration:     item.Duration,
			AddedAt:      item.AddedAt,
		})
		resp.Total += item.Price
	}

	return resp, nil
}
