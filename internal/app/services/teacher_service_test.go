package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

type fakeTeacherStore struct {
	teachers map[string]*models.Teacher
	courses  int
	students int
	revenue  int64
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{teachers: make(map[string]*models.Teacher)}
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id string) (*models.Teacher, error) {
	teacher, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return teacher, nil
}

func (f *fakeTeacherStore) List(_ context.Context) ([]*models.Teacher, error) {
	var out []*models.Teacher
	for _, teacher := range f.teachers {
		out = append(out, teacher)
	}
	return out, nil
}

func (f *fakeTeacherStore) Upsert(_ context.Context, teacher *models.Teacher) error {
	copied := *teacher
	f.teachers[teacher.ID] = &copied
	return nil
}

func (f *fakeTeacherStore) Aggregates(_ context.Context, _ string) (int, int, int64, error) {
	return f.courses, f.students, f.revenue, nil
}

func TestUpsertProfileCreatesAndReplaces(t *testing.T) {
	store := newFakeTeacherStore()
	svc := NewTeacherService(store)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, "teacher-1", &dto.UpsertTeacherRequest{Name: "Alan", Email: "alan@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpsertProfile(ctx, "teacher-1", &dto.UpsertTeacherRequest{Name: "Alan Turing", Email: "alan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", updated.Name)

	stored, err := svc.GetTeacher(ctx, "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", stored.Name)
}

func TestGetStatsAppliesRevenueSplit(t *testing.T) {
	store := newFakeTeacherStore()
	store.courses = 3
	store.students = 40
	store.revenue = 10000
	svc := NewTeacherService(store)

	_, err := svc.UpsertProfile(context.Background(), "teacher-1", &dto.UpsertTeacherRequest{Name: "Alan", Email: "alan@example.com"})
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background(), "teacher-1")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 40, stats.TotalStudents)
	assert.Equal(t, int64(10000), stats.TotalRevenue)
	assert.Equal(t, 7500.0, stats.TeacherShare)
	assert.Equal(t, 2000.0, stats.PlatformShare)
	assert.Equal(t, 500.0, stats.TaxShare)
}

func TestGetStatsUnknownTeacher(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore())

	_, err := svc.GetStats(context.Background(), "nobody")

	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
