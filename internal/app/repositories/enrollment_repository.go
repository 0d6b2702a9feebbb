package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
)

// EnrollmentStore answers purchased-course membership questions.
type EnrollmentStore interface {
	HasAccess(ctx context.Context, studentID string, courseID int64) (bool, error)
	ListPurchased(ctx context.Context, studentID string) ([]*models.Course, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

var _ EnrollmentStore = (*EnrollmentRepository)(nil)

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// HasAccess reports whether the student has purchased the course
func (r *EnrollmentRepository) HasAccess(ctx context.Context, studentID string, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course access: %w", err)
	}

	return exists, nil
}

// ListPurchased returns the courses the student owns, most recent purchase first
func (r *EnrollmentRepository) ListPurchased(ctx context.Context, studentID string) ([]*models.Course, error) {
	query := `
		SELECT ` + qualifyCourseColumns("c") + `
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}

	return collectCourses(rows)
}

// ListByCourse returns the append-only enrollment records for one course
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	query := `
		SELECT course_id, student_id, student_email, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrolled_at
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.CourseID, &e.StudentID, &e.StudentEmail, &e.EnrolledAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
