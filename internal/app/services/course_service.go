package services

import (
	"context"
	"strings"
	"time"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/logger"
)

const defaultTotalSlots = 50

// CourseService handles the course catalog and approval lifecycle
type CourseService struct {
	courseStore     repositories.CourseStore
	enrollmentStore repositories.EnrollmentStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore repositories.CourseStore, enrollmentStore repositories.EnrollmentStore) *CourseService {
	return &CourseService{
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
	}
}

// CreateCourse registers a new course for the given teacher. The course
// starts unapproved and invisible to students.
func (s *CourseService) CreateCourse(ctx context.Context, teacherID string, req *dto.CreateCourseRequest) (*models.Course, error) {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(req.Duration) == "" {
		missing = append(missing, "duration")
	}
	if strings.TrimSpace(req.ThumbnailURL) == "" {
		missing = append(missing, "thumbnailUrl")
	}
	if strings.TrimSpace(req.YoutubeURL) == "" {
		missing = append(missing, "youtubeUrl")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", missing)
	}

	if req.Price < 0 {
		return nil, apperrors.NewValidationError("price cannot be negative", []string{"price"})
	}

	level := models.CourseLevel(req.Level)
	if req.Level == "" {
		level = models.LevelBeginner
	} else if !models.ValidLevel(level) {
		return nil, apperrors.NewValidationError("level must be Beginner, Intermediate or Advanced", []string{"level"})
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "General"
	}

	totalSlots := req.TotalSlots
	if totalSlots <= 0 {
		totalSlots = defaultTotalSlots
	}

	course := &models.Course{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Category:       category,
		Level:          level,
		Duration:       req.Duration,
		Price:          req.Price,
		TotalSlots:     totalSlots,
		AvailableSlots: totalSlots,
		ThumbnailURL:   req.ThumbnailURL,
		YoutubeURL:     req.YoutubeURL,
		Notes:          req.Notes,
		CreatedBy:      teacherID,
		IsApproved:     false,
		ApprovedAt:     nil,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("courseId", course.ID).
		Str("teacherId", teacherID).
		Msg("Course created, awaiting approval")

	return course, nil
}

// GetCourse returns one approved course for public display
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseStore.GetApprovedByID(ctx, id)
}

// ListCourses returns the public catalog of approved courses
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseStore.ListApproved(ctx)
}

// ListTeacherCourses returns the teacher's own courses, optionally filtered
// by approval state
func (s *CourseService) ListTeacherCourses(ctx context.Context, teacherID string, filter dto.TeacherCourseFilter) ([]*models.Course, error) {
	switch filter {
	case "", dto.TeacherCoursesAll:
		filter = dto.TeacherCoursesAll
	case dto.TeacherCoursesPending, dto.TeacherCoursesApproved:
	default:
		return nil, apperrors.NewValidationError("filter must be all, pending or approved", []string{"filter"})
	}

	return s.courseStore.ListByTeacher(ctx, teacherID, filter)
}

// UpdateCourse applies an owner's edits to their course. Price is never
// touched here regardless of what the client sends.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, teacherID string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	// Ownership check and update use the same predicate, so a non-owner
	// gets the same not-found as a missing course.
	course, err := s.courseStore.GetOwned(ctx, id, teacherID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("title cannot be empty", []string{"title"})
		}
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		level := models.CourseLevel(*req.Level)
		if !models.ValidLevel(level) {
			return nil, apperrors.NewValidationError("level must be Beginner, Intermediate or Advanced", []string{"level"})
		}
		course.Level = level
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = *req.ThumbnailURL
	}
	if req.YoutubeURL != nil {
		course.YoutubeURL = *req.YoutubeURL
	}
	if req.Notes != nil {
		course.Notes = *req.Notes
	}

	if err := s.courseStore.UpdateOwned(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// ListCourseEnrollments returns the enrollment records of one of the
// teacher's own courses, oldest first. The ownership predicate matches
// UpdateCourse, so a non-owner sees the same not-found as a missing course.
func (s *CourseService) ListCourseEnrollments(ctx context.Context, id int64, teacherID string) ([]models.Enrollment, error) {
	if _, err := s.courseStore.GetOwned(ctx, id, teacherID); err != nil {
		return nil, err
	}

	return s.enrollmentStore.ListByCourse(ctx, id)
}

// ListPendingCourses returns unapproved courses with their teacher names,
// for the admin review queue
func (s *CourseService) ListPendingCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseStore.ListPending(ctx)
}

// ApproveCourse publishes a course to the catalog. Approving an already
// approved course is a no-op that keeps the original approval time.
func (s *CourseService) ApproveCourse(ctx context.Context, id int64) (*models.Course, error) {
	if _, err := s.courseStore.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.courseStore.Approve(ctx, id, time.Now()); err != nil {
		return nil, err
	}

	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("courseId", id).Msg("Course approved")

	return course, nil
}

// DeleteCourse removes a course and, through the schema, its enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseStore.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("courseId", id).Msg("Course deleted")

	return nil
}
