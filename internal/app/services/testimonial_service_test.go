package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
)

type fakeTestimonialStore struct {
	entries []models.Testimonial
}

func (f *fakeTestimonialStore) Create(_ context.Context, t *models.Testimonial) error {
	t.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *t)
	return nil
}

func (f *fakeTestimonialStore) List(_ context.Context) ([]models.Testimonial, error) {
	return append([]models.Testimonial(nil), f.entries...), nil
}

func TestAddTestimonialAppliesDefaults(t *testing.T) {
	svc := NewTestimonialService(&fakeTestimonialStore{})

	created, err := svc.AddTestimonial(context.Background(), "user-1", &dto.AddTestimonialRequest{
		Name:    "Ada",
		Message: "Great platform!",
		Avatar:  "https://img.example.com/ada.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Learner", created.Role)
	assert.Equal(t, 5, created.Rating)
	assert.Equal(t, "Verified Learner", created.Achievement)
	assert.Equal(t, "user-1", created.UserID)
}

func TestAddTestimonialKeepsExplicitValues(t *testing.T) {
	svc := NewTestimonialService(&fakeTestimonialStore{})

	created, err := svc.AddTestimonial(context.Background(), "user-2", &dto.AddTestimonialRequest{
		Name:        "Alan",
		Role:        "Engineer",
		Message:     "Learned a lot.",
		Avatar:      "https://img.example.com/alan.png",
		Rating:      3,
		Achievement: "Course Finisher",
	})

	require.NoError(t, err)
	assert.Equal(t, "Engineer", created.Role)
	assert.Equal(t, 3, created.Rating)
	assert.Equal(t, "Course Finisher", created.Achievement)
}
