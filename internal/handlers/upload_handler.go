package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"memories-backend/internal/dto"
	"memories-backend/internal/services"
	"memories-backend/internal/storage"
	"memories-backend/utils/response"
)

// StaticPrefix is where the static file layer serves stored uploads from.
const StaticPrefix = "/uploads/"

type UploadHandler struct {
	service       *services.UploadService
	maxUploadSize int64
}

func NewUploadHandler(service *services.UploadService, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxUploadSize: maxUploadSize}
}

// Upload accepts a single multipart file, validates its size and declared
// MIME type, stores it under a generated name and returns the URL it is
// served from. The declared Content-Length is checked before anything is
// read; the body reader is capped independently since clients can misreport
// or omit the header.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadSize {
		response.Error(w, http.StatusBadRequest, "File too large")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if isBodyTooLarge(err) {
			response.Error(w, http.StatusBadRequest, "File too large")
			return
		}
		response.Error(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	fileName, err := h.service.Store(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedMediaType):
			response.Error(w, http.StatusBadRequest, "Invalid file format")
		case isBodyTooLarge(err):
			response.Error(w, http.StatusBadRequest, "File too large")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to store file")
		}
		return
	}

	fileURL := fmt.Sprintf("%s://%s%s%s", requestScheme(r), r.Host, StaticPrefix, fileName)

	response.JSON(w, http.StatusCreated, dto.UploadResponse{FileURL: fileURL})
}

// Delete removes a stored file by name. A missing file is a NotFound, not a
// server error.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fileName := r.PathValue("fileName")
	if fileName == "" {
		response.Error(w, http.StatusBadRequest, "'fileName' not present in path")
		return
	}

	// Stored names never contain separators; reject traversal attempts.
	if fileName != filepath.Base(fileName) {
		response.Error(w, http.StatusBadRequest, "Invalid file name")
		return
	}

	if err := h.service.Delete(fileName); err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			response.Error(w, http.StatusNotFound, "File not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	response.NoContent(w)
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
