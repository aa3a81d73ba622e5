// Package repository defines persistence interfaces for the service's
// aggregates plus their Postgres implementations. Handlers and services
// depend on the interfaces only, so tests can substitute in-memory fakes.
package repository

import (
	"context"
	"errors"

	"memories-backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrMemoryNotFound = errors.New("memory not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type MemoryRepository interface {
	// Create inserts the memory and fills in the generated id and
	// creation timestamp.
	Create(ctx context.Context, memory *models.Memory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Memory, error)
	// ListByOwner returns the owner's memories ordered by creation time
	// ascending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Memory, error)
	Update(ctx context.Context, memory *models.Memory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	// Create inserts the user and fills in the generated id and creation
	// timestamp.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
