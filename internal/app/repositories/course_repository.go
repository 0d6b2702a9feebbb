package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// CourseStore is the catalog surface the services depend on.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetApprovedByID(ctx context.Context, id int64) (*models.Course, error)
	GetOwned(ctx context.Context, id int64, teacherID string) (*models.Course, error)
	ListApproved(ctx context.Context) ([]*models.Course, error)
	ListPending(ctx context.Context) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID string, filter dto.TeacherCourseFilter) ([]*models.Course, error)
	UpdateOwned(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, at time.Time) error
}

const courseColumns = `
	id, title, description, category, level, duration, price,
	total_slots, available_slots, thumbnail_url, youtube_url, notes,
	created_by, is_approved, approved_at, total_enrolled, total_revenue,
	created_at, updated_at`

// qualifyCourseColumns prefixes every catalog column with a table alias.
// Required whenever courseColumns feeds a join: teachers also defines id,
// created_at and updated_at, and an unqualified reference to those is
// ambiguous (SQLSTATE 42702).
func qualifyCourseColumns(alias string) string {
	columns := strings.Split(courseColumns, ",")
	for i, column := range columns {
		columns[i] = alias + "." + strings.TrimSpace(column)
	}
	return strings.Join(columns, ", ")
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

var _ CourseStore = (*CourseRepository)(nil)

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Level, &c.Duration, &c.Price,
		&c.TotalSlots, &c.AvailableSlots, &c.ThumbnailURL, &c.YoutubeURL, &c.Notes,
		&c.CreatedBy, &c.IsApproved, &c.ApprovedAt, &c.TotalEnrolled, &c.TotalRevenue,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course. Slots start full and the course starts pending.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (
			title, description, category, level, duration, price,
			total_slots, available_slots, thumbnail_url, youtube_url, notes, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.Category, course.Level, course.Duration, course.Price,
		course.TotalSlots, course.AvailableSlots, course.ThumbnailURL, course.YoutubeURL, course.Notes, course.CreatedBy,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course regardless of approval state
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetApprovedByID retrieves a course only if it has passed the approval gate
func (r *CourseRepository) GetApprovedByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND is_approved = TRUE`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving approved course: %w", err)
	}

	return course, nil
}

// GetOwned retrieves a course only when the given teacher authored it
func (r *CourseRepository) GetOwned(ctx context.Context, id int64, teacherID string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND created_by = $2`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving owned course: %w", err)
	}

	return course, nil
}

// ListApproved returns the student-visible catalog, newest first
func (r *CourseRepository) ListApproved(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE is_approved = TRUE ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectCourses(rows)
}

var listPendingQuery = `
	SELECT ` + qualifyCourseColumns("c") + `, COALESCE(t.name, 'Unknown')
	FROM courses c
	LEFT JOIN teachers t ON t.id = c.created_by
	WHERE c.is_approved = FALSE
	ORDER BY c.created_at DESC`

// ListPending returns unapproved courses enriched with the authoring teacher's
// display name; teachers that no longer resolve are reported as "Unknown".
func (r *CourseRepository) ListPending(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, listPendingQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var c models.Course
		err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.Category, &c.Level, &c.Duration, &c.Price,
			&c.TotalSlots, &c.AvailableSlots, &c.ThumbnailURL, &c.YoutubeURL, &c.Notes,
			&c.CreatedBy, &c.IsApproved, &c.ApprovedAt, &c.TotalEnrolled, &c.TotalRevenue,
			&c.CreatedAt, &c.UpdatedAt, &c.TeacherName,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListByTeacher returns a teacher's own courses, optionally narrowed to
// pending or approved ones, newest first.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string, filter dto.TeacherCourseFilter) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE created_by = $1`
	switch filter {
	case dto.TeacherCoursesPending:
		query += ` AND is_approved = FALSE`
	case dto.TeacherCoursesApproved:
		query += ` AND is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}

	return collectCourses(rows)
}

// UpdateOwned persists teacher-editable attributes. Price, slots, approval
// state and aggregates are deliberately not part of the statement; price is
// locked after creation and the rest belong to other components.
func (r *CourseRepository) UpdateOwned(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, category = $3, level = $4, duration = $5,
		    thumbnail_url = $6, youtube_url = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND created_by = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Description, course.Category, course.Level, course.Duration,
		course.ThumbnailURL, course.YoutubeURL, course.Notes,
		course.ID, course.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete hard-deletes a course. A second delete of the same id reports not found.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Approve moves a course through the approval gate. The transition is
// terminal: re-approving keeps the original approved_at stamp.
func (r *CourseRepository) Approve(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE courses
		SET is_approved = TRUE, approved_at = COALESCE(approved_at, $2), updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("error approving course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
