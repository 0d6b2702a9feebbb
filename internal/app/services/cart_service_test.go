package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// fakeCartStore resolves against a fakeCourseStore so deleted courses drop
// from the view like the real JOIN.
type fakeCartStore struct {
	courses *fakeCourseStore
	items   map[string]map[int64]time.Time
}

func newFakeCartStore(courses *fakeCourseStore) *fakeCartStore {
	return &fakeCartStore{courses: courses, items: make(map[string]map[int64]time.Time)}
}

func (f *fakeCartStore) Toggle(_ context.Context, studentID string, courseID int64) (bool, error) {
	cart, ok := f.items[studentID]
	if !ok {
		cart = make(map[int64]time.Time)
		f.items[studentID] = cart
	}
	if _, present := cart[courseID]; present {
		delete(cart, courseID)
		return false, nil
	}
	cart[courseID] = time.Now()
	return true, nil
}

func (f *fakeCartStore) GetResolved(_ context.Context, studentID string) ([]models.CartCourse, error) {
	var out []models.CartCourse
	for courseID, addedAt := range f.items[studentID] {
		course, ok := f.courses.courses[courseID]
		if !ok {
			continue
		}
		out = append(out, models.CartCourse{
			CourseID:       course.ID,
			Title:          course.Title,
			Price:          course.Price,
			ThumbnailURL:   course.ThumbnailURL,
			Duration:       course.Duration,
			AvailableSlots: course.AvailableSlots,
			AddedAt:        addedAt,
		})
	}
	return out, nil
}

func newCartFixture(t *testing.T) (*CartService, *fakeCourseStore, *models.Course) {
	t.Helper()

	courses := newFakeCourseStore()
	courseSvc := NewCourseService(courses, &fakeEnrollmentStore{})

	created, err := courseSvc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)
	_, err = courseSvc.ApproveCourse(context.Background(), created.ID)
	require.NoError(t, err)

	return NewCartService(newFakeCartStore(courses), courses), courses, created
}

func TestToggleCourseFlipsMembership(t *testing.T) {
	svc, _, course := newCartFixture(t)
	ctx := context.Background()

	first, err := svc.ToggleCourse(ctx, "student-1", course.ID)
	require.NoError(t, err)
	assert.True(t, first.InCart)

	second, err := svc.ToggleCourse(ctx, "student-1", course.ID)
	require.NoError(t, err)
	assert.False(t, second.InCart)

	third, err := svc.ToggleCourse(ctx, "student-1", course.ID)
	require.NoError(t, err)
	assert.True(t, third.InCart)
}

func TestToggleCourseRejectsUnapproved(t *testing.T) {
	courses := newFakeCourseStore()
	courseSvc := NewCourseService(courses, &fakeEnrollmentStore{})
	created, err := courseSvc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)

	svc := NewCartService(newFakeCartStore(courses), courses)

	_, err = svc.ToggleCourse(context.Background(), "student-1", created.ID)

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCartComputesTotal(t *testing.T) {
	svc, courses, course := newCartFixture(t)
	ctx := context.Background()

	courseSvc := NewCourseService(courses, &fakeEnrollmentStore{})
	req := validCreateRequest()
	req.Title = "Second Course"
	req.Price = 250
	second, err := courseSvc.CreateCourse(ctx, "teacher-1", req)
	require.NoError(t, err)
	_, err = courseSvc.ApproveCourse(ctx, second.ID)
	require.NoError(t, err)

	_, err = svc.ToggleCourse(ctx, "student-1", course.ID)
	require.NoError(t, err)
	_, err = svc.ToggleCourse(ctx, "student-1", second.ID)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "student-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(749), cart.Total)
}

func TestGetCartDropsDeletedCourses(t *testing.T) {
	svc, courses, course := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.ToggleCourse(ctx, "student-1", course.ID)
	require.NoError(t, err)

	require.NoError(t, courses.Delete(ctx, course.ID))

	cart, err := svc.GetCart(ctx, "student-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
}
