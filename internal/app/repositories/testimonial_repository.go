package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
)

// TestimonialStore persists learner testimonials.
type TestimonialStore interface {
	Create(ctx context.Context, t *models.Testimonial) error
	List(ctx context.Context) ([]models.Testimonial, error)
}

// TestimonialRepository handles database operations for testimonials
type TestimonialRepository struct {
	db *pgxpool.Pool
}

var _ TestimonialStore = (*TestimonialRepository)(nil)

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
	}
}

// Create stores a testimonial
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (user_id, name, role, message, avatar, rating, achievement)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		t.UserID, t.Name, t.Role, t.Message, t.Avatar, t.Rating, t.Achievement,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating testimonial: %w", err)
	}

	return nil
}

// List returns all testimonials, newest first
func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	query := `
		SELECT id, user_id, name, role, message, avatar, rating, achievement, created_at
		FROM testimonials
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Role, &t.Message,
			&t.Avatar, &t.Rating, &t.Achievement, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}
