package dto

import (
	"errors"
	"net/url"
	"time"

	"memories-backend/internal/models"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// ContentPreviewLength is the number of leading characters of a memory's
// content exposed in list views.
const ContentPreviewLength = 115

type MemoryRequest struct {
	Content  string `json:"content"`
	CoverURL string `json:"coverUrl"`
	IsPublic bool   `json:"isPublic"`
}

func (r *MemoryRequest) Validate() error {
	var result *multierror.Error

	if r.Content == "" {
		result = multierror.Append(result, errors.New("'content' is required"))
	}

	if r.CoverURL == "" {
		result = multierror.Append(result, errors.New("'coverUrl' is required"))
	} else if !isAbsoluteURL(r.CoverURL) {
		result = multierror.Append(result, errors.New("'coverUrl' must be a valid URL"))
	}

	return result.ErrorOrNil()
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// MemorySummary is the projection returned by unfiltered list views: the
// content is cut down to a preview so the payload stays small.
type MemorySummary struct {
	ID        uuid.UUID `json:"id"`
	CoverURL  string    `json:"coverUrl"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

func SummarizeMemory(m models.Memory) MemorySummary {
	content := m.Content
	if runes := []rune(content); len(runes) > ContentPreviewLength {
		content = string(runes[:ContentPreviewLength]) + "..."
	}

	return MemorySummary{
		ID:        m.ID,
		CoverURL:  m.CoverURL,
		Content:   content,
		IsPublic:  m.IsPublic,
		CreatedAt: m.CreatedAt,
	}
}
