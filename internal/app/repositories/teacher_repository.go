package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// TeacherStore is the teacher-profile surface the services depend on.
type TeacherStore interface {
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	List(ctx context.Context) ([]*models.Teacher, error)
	Upsert(ctx context.Context, teacher *models.Teacher) error
	Aggregates(ctx context.Context, teacherID string) (courses int, students int, revenue int64, err error)
}

const teacherColumns = `
	id, name, email, image, phone, bio, specialization, skills,
	working_at, experience_years, location, website, created_at, updated_at`

// TeacherRepository handles database operations for teacher profiles
type TeacherRepository struct {
	db *pgxpool.Pool
}

var _ TeacherStore = (*TeacherRepository)(nil)

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var t models.Teacher
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Image, &t.Phone, &t.Bio, &t.Specialization, &t.Skills,
		&t.WorkingAt, &t.ExperienceYears, &t.Location, &t.Website, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID retrieves a teacher profile
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// List retrieves all teacher profiles
func (r *TeacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Upsert creates or updates a teacher profile in one statement
func (r *TeacherRepository) Upsert(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (
			id, name, email, image, phone, bio, specialization, skills,
			working_at, experience_years, location, website
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, image = EXCLUDED.image,
		    phone = EXCLUDED.phone, bio = EXCLUDED.bio, specialization = EXCLUDED.specialization,
		    skills = EXCLUDED.skills, working_at = EXCLUDED.working_at,
		    experience_years = EXCLUDED.experience_years, location = EXCLUDED.location,
		    website = EXCLUDED.website, updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		teacher.ID, teacher.Name, teacher.Email, teacher.Image, teacher.Phone, teacher.Bio,
		teacher.Specialization, teacher.Skills, teacher.WorkingAt, teacher.ExperienceYears,
		teacher.Location, teacher.Website,
	).Scan(&teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting teacher: %w", err)
	}

	return nil
}

// Aggregates computes dashboard totals from the teacher's courses. Revenue
// lives on the course rows, maintained by the settlement engine.
func (r *TeacherRepository) Aggregates(ctx context.Context, teacherID string) (int, int, int64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_enrolled), 0), COALESCE(SUM(total_revenue), 0)
		FROM courses
		WHERE created_by = $1
	`

	var courses, students int
	var revenue int64
	if err := r.db.QueryRow(ctx, query, teacherID).Scan(&courses, &students, &revenue); err != nil {
		return 0, 0, 0, fmt.Errorf("error computing teacher aggregates: %w", err)
	}

	return courses, students, revenue, nil
}
