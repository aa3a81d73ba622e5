package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"memories-backend/internal/database"
	"memories-backend/internal/models"

	"github.com/google/uuid"
)

type MemoryPostgres struct {
	db *database.DB
}

func NewMemoryPostgres(db *database.DB) *MemoryPostgres {
	return &MemoryPostgres{db: db}
}

func (r *MemoryPostgres) Create(ctx context.Context, memory *models.Memory) error {
	query := `
		insert into memories (user_id, content, cover_url, is_public)
		values ($1, $2, $3, $4)
		returning id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query,
		memory.UserID, memory.Content, memory.CoverURL, memory.IsPublic)
	if err := row.Scan(&memory.ID, &memory.CreatedAt); err != nil {
		return fmt.Errorf("failed to create memory: %w", err)
	}
	return nil
}

func (r *MemoryPostgres) GetByID(ctx context.Context, id uuid.UUID) (*models.Memory, error) {
	var memory models.Memory
	query := `
		select id, user_id, content, cover_url, is_public, created_at
		from memories
		where id = $1
	`
	if err := r.db.GetContext(ctx, &memory, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemoryNotFound
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return &memory, nil
}

func (r *MemoryPostgres) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Memory, error) {
	memories := []models.Memory{}
	query := `
		select id, user_id, content, cover_url, is_public, created_at
		from memories
		where user_id = $1
		order by created_at asc
	`
	if err := r.db.SelectContext(ctx, &memories, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return memories, nil
}

func (r *MemoryPostgres) Update(ctx context.Context, memory *models.Memory) error {
	query := `
		update memories
		set content = $1, cover_url = $2, is_public = $3
		where id = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		memory.Content, memory.CoverURL, memory.IsPublic, memory.ID)
	if err != nil {
		return fmt.Errorf("failed to update memory: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update memory: %w", err)
	}
	if affected == 0 {
		return ErrMemoryNotFound
	}
	return nil
}

func (r *MemoryPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "delete from memories where id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	if affected == 0 {
		return ErrMemoryNotFound
	}
	return nil
}
