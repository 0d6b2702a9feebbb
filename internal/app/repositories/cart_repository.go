package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
)

// CartStore is the cart surface the services depend on.
type CartStore interface {
	Toggle(ctx context.Context, studentID string, courseID int64) (bool, error)
	GetResolved(ctx context.Context, studentID string) ([]models.CartCourse, error)
}

// CartRepository handles database operations for student carts
type CartRepository struct {
	db *pgxpool.Pool
}

var _ CartStore = (*CartRepository)(nil)

// NewCartRepository creates a new cart repository
func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

// Toggle flips cart membership for one course and returns the new state.
// Each branch is a single statement against the (student_id, course_id)
// primary key, so two concurrent toggles cannot duplicate an entry.
func (r *CartRepository) Toggle(ctx context.Context, studentID string, courseID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return false, fmt.Errorf("error removing cart item: %w", err)
	}

	if cmdTag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO cart_items (student_id, course_id) VALUES ($1, $2)
		 ON CONFLICT (student_id, course_id) DO NOTHING`,
		studentID, courseID)
	if err != nil {
		return false, fmt.Errorf("error adding cart item: %w", err)
	}

	return true, nil
}

// GetResolved returns the student's cart joined against live course data.
// Entries whose course has since been deleted simply drop out of the join.
func (r *CartRepository) GetResolved(ctx context.Context, studentID string) ([]models.CartCourse, error) {
	query := `
		SELECT c.id, c.title, c.price, c.thumbnail_url, c.duration, c.available_slots, ci.added_at
		FROM cart_items ci
		JOIN courses c ON c.id = ci.course_id
		WHERE ci.student_id = $1
		ORDER BY ci.added_at
	`

	rows, err := r.db.Query(ctx, query, studentID)
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
