package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"memories-backend/internal/database"
	"memories-backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type UserPostgres struct {
	db *database.DB
}

func NewUserPostgres(db *database.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

func (r *UserPostgres) Create(ctx context.Context, user *models.User) error {
	query := `
		insert into users (name, email, password_hash)
		values ($1, $2, $3)
		returning id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserPostgres) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := "select id, name, email, password_hash, created_at from users where email = $1"

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := "select id, name, email, password_hash, created_at from users where id = $1"

	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
