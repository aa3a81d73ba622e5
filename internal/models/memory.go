package models

import (
	"time"

	"github.com/google/uuid"
)

type Memory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	CoverURL  string    `db:"cover_url" json:"coverUrl"`
	IsPublic  bool      `db:"is_public" json:"isPublic"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
