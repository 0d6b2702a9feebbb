package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/db"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// SettlementStore is everything the settlement engine touches. All methods
// run against the same transaction, so an error from the engine rolls every
// mutation back.
type SettlementStore interface {
	StudentByID(ctx context.Context, id string) (*models.User, error)
	CartWithCourses(ctx context.Context, studentID string) ([]models.CartCourse, error)
	PurchasedCourseIDs(ctx context.Context, studentID string) (map[int64]struct{}, error)
	ClaimSlot(ctx context.Context, courseID int64) (bool, error)
	AddEnrollment(ctx context.Context, e models.Enrollment) error
	RecordSettlement(ctx context.Context, entry models.SettlementEntry) error
	ClearCart(ctx context.Context, studentID string) error
}

// SettlementRunner opens a settlement transaction around fn.
type SettlementRunner interface {
	InSettlementTx(ctx context.Context, fn func(ctx context.Context, store SettlementStore) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SettlementRepository runs settlement transactions against Postgres
type SettlementRepository struct {
	db *pgxpool.Pool
}

var _ SettlementRunner = (*SettlementRepository)(nil)

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{
		db: db,
	}
}

// InSettlementTx executes fn within one database transaction
func (r *SettlementRepository) InSettlementTx(ctx context.Context, fn func(ctx context.Context, store SettlementStore) error) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &settlementTx{q: tx})
	})
}

// settlementTx is the transaction-bound SettlementStore implementation
type settlementTx struct {
	q querier
}

func (s *settlementTx) StudentByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return user, nil
}

func (s *settlementTx) CartWithCourses(ctx context.Context, studentID string) ([]models.CartCourse, error) {
	query := `
		SELECT c.id, c.title, c.price, c.thumbnail_url, c.duration, c.available_slots, ci.added_at
		FROM cart_items ci
		JOIN courses c ON c.id = ci.course_id
		WHERE ci.student_id = $1
		ORDER BY ci.added_at
	`

	rows, err := s.q.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartCourse
	for rows.Next() {
		var item models.CartCourse
		if err := rows.Scan(
			&item.CourseID, &item.Title, &item.Price, &item.ThumbnailURL,
			&item.Duration, &item.AvailableSlots, &item.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *settlementTx) PurchasedCourseIDs(ctx context.Context, studentID string) (map[int64]struct{}, error) {
	rows, err := s.q.Query(ctx,
		`SELECT course_id FROM enrollments WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owned := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owned[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return owned, nil
}

// ClaimSlot atomically takes one slot and folds the purchase into the course
// aggregates. When two settlements race for the last slot, the WHERE clause
// guarantees exactly one update reports a row.
func (s *settlementTx) ClaimSlot(ctx context.Context, courseID int64) (bool, error) {
	query := `
		UPDATE courses
		SET available_slots = available_slots - 1,
		    total_enrolled = total_enrolled + 1,
		    total_revenue = total_revenue + price,
		    updated_at = NOW()
		WHERE id = $1 AND available_slots > 0
	`

	cmdTag, err := s.q.Exec(ctx, query, courseID)
	if err != nil {
		return false, fmt.Errorf("error claiming course slot: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

func (s *settlementTx) AddEnrollment(ctx context.Context, e models.Enrollment) error {
	query := `
		INSERT INTO enrollments (course_id, student_id, student_email, enrolled_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.q.Exec(ctx, query, e.CourseID, e.StudentID, e.StudentEmail, e.EnrolledAt); err != nil {
		return fmt.Errorf("error recording enrollment: %w", err)
	}

	return nil
}

func (s *settlementTx) RecordSettlement(ctx context.Context, entry models.SettlementEntry) error {
	query := `
		INSERT INTO settlements (id, student_id, course_id, amount, teacher_share, platform_share, tax_share, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.q.Exec(ctx, query,
		entry.ID, entry.StudentID, entry.CourseID, entry.Amount,
		entry.TeacherShare, entry.PlatformShare, entry.TaxShare, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error recording settlement entry: %w", err)
	}

	return nil
}

func (s *settlementTx) ClearCart(ctx context.Context, studentID string) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM cart_items WHERE student_id = $1`, studentID); err != nil {
		return fmt.Errorf("error clearing cart: %w", err)
	}
	return nil
}
