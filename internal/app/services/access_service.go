package services

import (
	"context"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
)

// AccessService answers content-access questions for students
type AccessService struct {
	enrollmentStore repositories.EnrollmentStore
}

// NewAccessService creates a new access service instance
func NewAccessService(enrollmentStore repositories.EnrollmentStore) *AccessService {
	return &AccessService{
		enrollmentStore: enrollmentStore,
	}
}

// CheckAccess reports whether the student has purchased the course.
// An unknown course simply reports no access.
func (s *AccessService) CheckAccess(ctx context.Context, studentID string, courseID int64) (*dto.AccessResponse, error) {
	hasAccess, err := s.enrollmentStore.HasAccess(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.AccessResponse{
		CourseID:  courseID,
		HasAccess: hasAccess,
	}, nil
}

// ListPurchased returns every course the student has bought, newest first
func (s *AccessService) ListPurchased(ctx context.Context, studentID string) ([]*models.Course, error) {
	return s.enrollmentStore.ListPurchased(ctx, studentID)
}
