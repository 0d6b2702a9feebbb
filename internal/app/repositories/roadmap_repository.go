package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge/skillbridge-backend/internal/app/models"
	"github.com/skillbridge/skillbridge-backend/internal/pkg/apperrors"
)

// RoadmapStore persists generated learning roadmaps.
type RoadmapStore interface {
	Create(ctx context.Context, chat *models.RoadmapChat) error
	ListByUser(ctx context.Context, userID string) ([]models.RoadmapChat, error)
	DeleteOwned(ctx context.Context, id int64, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

// RoadmapRepository handles database operations for roadmap chats
type RoadmapRepository struct {
	db *pgxpool.Pool
}

var _ RoadmapStore = (*RoadmapRepository)(nil)

// NewRoadmapRepository creates a new roadmap repository
func NewRoadmapRepository(db *pgxpool.Pool) *RoadmapRepository {
	return &RoadmapRepository{
		db: db,
	}
}

// Create stores a generated roadmap
func (r *RoadmapRepository) Create(ctx context.Context, chat *models.RoadmapChat) error {
	query := `
		INSERT INTO roadmap_chats (user_id, user_email, topic, goal, roadmap)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		chat.UserID, chat.UserEmail, chat.Topic, chat.Goal, chat.Roadmap,
	).Scan(&chat.ID, &chat.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating roadmap chat: %w", err)
	}

	return nil
}

// ListByUser returns a user's roadmap history, newest first
func (r *RoadmapRepository) ListByUser(ctx context.Context, userID string) ([]models.RoadmapChat, error) {
	query := `
		SELECT id, user_id, user_email, topic, goal, roadmap, created_at
		FROM roadmap_chats
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []models.RoadmapChat
	for rows.Next() {
		var chat models.RoadmapChat
		if err := rows.Scan(
			&chat.ID, &chat.UserID, &chat.UserEmail,
			&chat.Topic, &chat.Goal, &chat.Roadmap, &chat.CreatedAt,
		); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chats, nil
}

// DeleteOwned removes one roadmap, scoped to its owner
func (r *RoadmapRepository) DeleteOwned(ctx context.Context, id int64, userID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM roadmap_chats WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting roadmap chat: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoadmapNotFound
	}

	return nil
}

// DeleteAllByUser clears a user's entire roadmap history
func (r *RoadmapRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM roadmap_chats WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting roadmap history: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
