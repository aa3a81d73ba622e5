package services

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// Only still images and short clips are accepted as memory media.
var allowedMimeTypes = regexp.MustCompile(`^(image|video)/(png|jpe?g|gif|mp4|webm)$`)

var ErrUnsupportedMediaType = errors.New("invalid file format")

// FileStore is the byte storage uploads land in, addressed by filename.
type FileStore interface {
	Save(name string, data io.Reader) (int64, error)
	Remove(name string) error
}

type UploadService struct {
	store FileStore
}

func NewUploadService(store FileStore) *UploadService {
	return &UploadService{store: store}
}

// Store validates the declared MIME type, then streams the upload into the
// file store under a generated name. The extension is taken from the
// client-supplied filename, not sniffed from the content. Returns the stored
// filename.
func (s *UploadService) Store(filename, mimeType string, data io.Reader) (string, error) {
	if !allowedMimeTypes.MatchString(mimeType) {
		return "", ErrUnsupportedMediaType
	}

	name := uuid.New().String() + filepath.Ext(filename)

	if _, err := s.store.Save(name, data); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes a previously stored file by its generated name.
func (s *UploadService) Delete(name string) error {
	return s.store.Remove(name)
}
