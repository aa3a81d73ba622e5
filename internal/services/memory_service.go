package services

import (
	"context"
	"errors"

	"memories-backend/internal/dto"
	"memories-backend/internal/models"
	"memories-backend/internal/repository"

	"github.com/google/uuid"
)

// ErrNotOwner is returned when the requester may not see or mutate the
// memory. The HTTP layer reports it as 401 (the API has always used 401
// here, not 403).
var ErrNotOwner = errors.New("memory does not belong to the requester")

type MemoryService struct {
	repo repository.MemoryRepository
}

func NewMemoryService(repo repository.MemoryRepository) *MemoryService {
	return &MemoryService{repo: repo}
}

// List returns all memories owned by ownerID, oldest first.
func (s *MemoryService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Memory, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get fetches a memory. Private memories are only visible to their owner.
func (s *MemoryService) Get(ctx context.Context, id, requesterID uuid.UUID) (*models.Memory, error) {
	memory, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(memory, requesterID) {
		return nil, ErrNotOwner
	}
	return memory, nil
}

// Create stores a new memory owned by ownerID and returns it with the
// generated id and timestamp filled in.
func (s *MemoryService) Create(ctx context.Context, ownerID uuid.UUID, req dto.MemoryRequest) (*models.Memory, error) {
	memory := &models.Memory{
		UserID:   ownerID,
		Content:  req.Content,
		CoverURL: req.CoverURL,
		IsPublic: req.IsPublic,
	}

	if err := s.repo.Create(ctx, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// Update overwrites content, coverUrl and isPublic of an owned memory.
// Owner and creation time never change.
func (s *MemoryService) Update(ctx context.Context, id, requesterID uuid.UUID, req dto.MemoryRequest) (*models.Memory, error) {
	memory, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isOwner(memory, requesterID) {
		return nil, ErrNotOwner
	}

	memory.Content = req.Content
	memory.CoverURL = req.CoverURL
	memory.IsPublic = req.IsPublic

	if err := s.repo.Update(ctx, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// Delete removes an owned memory permanently.
func (s *MemoryService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	memory, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isOwner(memory, requesterID) {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func isOwner(memory *models.Memory, requesterID uuid.UUID) bool {
	return memory.UserID == requesterID
}

func canView(memory *models.Memory, requesterID uuid.UUID) bool {
	return memory.IsPublic || isOwner(memory, requesterID)
}
