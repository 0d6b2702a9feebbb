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

// UserStore is the learner-account surface the services depend on.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

const userColumns = `
	id, name, email, image, phone,
	address_street, address_city, address_state, address_country, address_pincode,
	created_at, updated_at`

// UserRepository handles database operations for learner accounts
type UserRepository struct {
	db *pgxpool.Pool
}

var _ UserStore = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Image, &u.Phone,
		&u.AddressStreet, &u.AddressCity, &u.AddressState, &u.AddressCountry, &u.AddressPincode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by the identity provider's id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// Upsert mirrors an identity-provider user record into the local store.
// Created and updated events land here identically.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, image = EXCLUDED.image, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Image); err != nil {
		return fmt.Errorf("error upserting user: %w", err)
	}

	return nil
}

// Delete removes a user mirror. Deleting an unknown id is not an error; the
// provider may replay deletion events.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
