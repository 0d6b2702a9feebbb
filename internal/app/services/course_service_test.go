package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// fakeCourseStore keeps courses in memory, keyed by id.
type fakeCourseStore struct {
	nextID  int64
	courses map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{nextID: 1, courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	copied := *course
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetApprovedByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok || !course.IsApproved {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) GetOwned(_ context.Context, id int64, teacherID string) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok || course.CreatedBy != teacherID {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) ListApproved(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.IsApproved {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListPending(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if !c.IsApproved {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) ListByTeacher(_ context.Context, teacherID string, filter dto.TeacherCourseFilter) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.CreatedBy != teacherID {
			continue
		}
		if filter == dto.TeacherCoursesPending && c.IsApproved {
			continue
		}
		if filter == dto.TeacherCoursesApproved && !c.IsApproved {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCourseStore) UpdateOwned(_ context.Context, course *models.Course) error {
	existing, ok := f.courses[course.ID]
	if !ok || existing.CreatedBy != course.CreatedBy {
		return apperrors.ErrCourseNotFound
	}
	// Price stays whatever it was at creation, like the real UPDATE.
	price := existing.Price
	copied := *course
	copied.Price = price
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) Approve(_ context.Context, id int64, at time.Time) error {
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.IsApproved = true
	if course.ApprovedAt == nil {
		course.ApprovedAt = &at
	}
	return nil
}

func validCreateRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:        "Go Backend Fundamentals",
		Description:  "Build REST APIs with Go.",
		Duration:     "8 weeks",
		ThumbnailURL: "https://cdn.example.com/thumb.png",
		YoutubeURL:   "https://youtube.com/watch?v=abc",
		Price:        499,
	}
}

func TestCreateCourseDefaults(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	course, err := svc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "General", course.Category)
	assert.Equal(t, models.LevelBeginner, course.Level)
	assert.Equal(t, 50, course.TotalSlots)
	assert.Equal(t, 50, course.AvailableSlots)
	assert.False(t, course.IsApproved)
	assert.Nil(t, course.ApprovedAt)
	assert.Equal(t, "teacher-1", course.CreatedBy)
}

func TestCreateCourseNamesMissingFields(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	req := validCreateRequest()
	req.Title = ""
	req.ThumbnailURL = " "

	_, err := svc.CreateCourse(context.Background(), "teacher-1", req)

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	details := apperrors.DetailsOf(err)
	require.NotNil(t, details)
	assert.ElementsMatch(t, []string{"title", "thumbnailUrl"}, details["fields"])
}

func TestCreateCourseRejectsNegativePrice(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	req := validCreateRequest()
	req.Price = -1

	_, err := svc.CreateCourse(context.Background(), "teacher-1", req)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseRejectsUnknownLevel(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	req := validCreateRequest()
	req.Level = "Expert"

	_, err := svc.CreateCourse(context.Background(), "teacher-1", req)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourseKeepsPrice(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store, &fakeEnrollmentStore{})

	created, err := svc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)

	title := "Renamed Course"
	updated, err := svc.UpdateCourse(context.Background(), created.ID, "teacher-1", &dto.UpdateCourseRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Course", updated.Title)

	stored, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(499), stored.Price)
}

func TestUpdateCourseByNonOwnerReportsNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	created, err := svc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateCourse(context.Background(), created.ID, "teacher-2", &dto.UpdateCourseRequest{Title: &title})

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestApproveCourseIsMonotonic(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store, &fakeEnrollmentStore{})

	created, err := svc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)

	first, err := svc.ApproveCourse(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ApprovedAt)

	second, err := svc.ApproveCourse(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, second.ApprovedAt)
	assert.Equal(t, *first.ApprovedAt, *second.ApprovedAt, "re-approval must keep the original timestamp")
}

func TestGetCourseHidesUnapproved(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	created, err := svc.CreateCourse(context.Background(), "teacher-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.GetCourse(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.ApproveCourse(context.Background(), created.ID)
	require.NoError(t, err)

	course, err := svc.GetCourse(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, course.IsApproved)
}

func TestListCourseEnrollmentsRequiresOwnership(t *testing.T) {
	store := newFakeCourseStore()
	enrollments := &fakeEnrollmentStore{}
	svc := NewCourseService(store, enrollments)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, "teacher-1", validCreateRequest())
	require.NoError(t, err)

	enrollments.byCourse = map[int64][]models.Enrollment{
		created.ID: {
			{CourseID: created.ID, StudentID: "student-1", StudentEmail: "one@example.com"},
			{CourseID: created.ID, StudentID: "student-2", StudentEmail: "two@example.com"},
		},
	}

	listed, err := svc.ListCourseEnrollments(ctx, created.ID, "teacher-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "student-1", listed[0].StudentID)

	_, err = svc.ListCourseEnrollments(ctx, created.ID, "teacher-2")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound, "non-owner sees the course as missing")

	_, err = svc.ListCourseEnrollments(ctx, created.ID+99, "teacher-1")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListTeacherCoursesRejectsUnknownFilter(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), &fakeEnrollmentStore{})

	_, err := svc.ListTeacherCourses(context.Background(), "teacher-1", "archived")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
