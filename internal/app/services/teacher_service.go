package services

import (
	"context"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/app/repositories"
)

// TeacherService handles teacher profiles and dashboard aggregates
type TeacherService struct {
	teacherStore repositories.TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherStore repositories.TeacherStore) *TeacherService {
	return &TeacherService{
		teacherStore: teacherStore,
	}
}

// GetTeacher returns one teacher profile
func (s *TeacherService) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	return s.teacherStore.GetByID(ctx, id)
}

// ListTeachers returns all teacher profiles
func (s *TeacherService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherStore.List(ctx)
}

// UpsertProfile creates or replaces the teacher's own profile
func (s *TeacherService) UpsertProfile(ctx context.Context, id string, req *dto.UpsertTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		ID:              id,
		Name:            req.Name,
		Email:           req.Email,
		Image:           req.Image,
		Phone:           req.Phone,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		Skills:          req.Skills,
		WorkingAt:       req.WorkingAt,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Website:         req.Website,
	}

	if err := s.teacherStore.Upsert(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// GetStats computes the teacher's dashboard aggregates from their courses,
// applying the 75/20/5 revenue split
func (s *TeacherService) GetStats(ctx context.Context, id string) (*models.TeacherStats, error) {
	if _, err := s.teacherStore.GetByID(ctx, id); err != nil {
		return nil, err
	}

	courses, students, revenue, err := s.teacherStore.Aggregates(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.TeacherStats{
		TeacherID:     id,
		TotalCourses:  courses,
		TotalStudents: students,
		TotalRevenue:  revenue,
		TeacherShare:  float64(revenue) * models.TeacherSharePercent / 100,
		PlatformShare: float64(revenue) * models.PlatformSharePercent / 100,
		TaxShare:      float64(revenue) * models.TaxSharePercent / 100,
	}, nil
}
