package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"memories-backend/internal/dto"
	"memories-backend/internal/middleware"
	"memories-backend/internal/models"
	"memories-backend/internal/repository"
	"memories-backend/internal/services"
	"memories-backend/utils/response"

	"github.com/google/uuid"
)

type MemoryHandler struct {
	service *services.MemoryService
}

func NewMemoryHandler(service *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{service: service}
}

// List returns the requester's memories, oldest first. With both beginDate
// and endDate present the full records inside the inclusive range are
// returned; without a range every record is cut down to a content preview.
// The two modes are mutually exclusive.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	memories, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list memories")
		return
	}

	beginParam := r.URL.Query().Get("beginDate")
	endParam := r.URL.Query().Get("endDate")

	if beginParam != "" && endParam != "" {
		begin, ok := parseDateParam(beginParam, false)
		if !ok {
			response.Error(w, http.StatusBadRequest, "Invalid 'beginDate'")
			return
		}
		end, ok := parseDateParam(endParam, true)
		if !ok {
			response.Error(w, http.StatusBadRequest, "Invalid 'endDate'")
			return
		}

		filtered := []models.Memory{}
		for _, memory := range memories {
			if !memory.CreatedAt.Before(begin) && !memory.CreatedAt.After(end) {
				filtered = append(filtered, memory)
			}
		}

		response.JSON(w, http.StatusOK, filtered)
		return
	}

	summaries := make([]dto.MemorySummary, 0, len(memories))
	for _, memory := range memories {
		summaries = append(summaries, dto.SummarizeMemory(memory))
	}

	response.JSON(w, http.StatusOK, summaries)
}

func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid memory id")
		return
	}

	memory, err := h.service.Get(r.Context(), id, claims.UserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, memory)
}

func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req dto.MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	memory, err := h.service.Create(r.Context(), claims.UserID, req)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create memory")
		return
	}

	response.JSON(w, http.StatusCreated, memory)
}

func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid memory id")
		return
	}

	var req dto.MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	memory, err := h.service.Update(r.Context(), id, claims.UserID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, memory)
}

func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid memory id")
		return
	}

	if err := h.service.Delete(r.Context(), id, claims.UserID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *MemoryHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrMemoryNotFound):
		response.Error(w, http.StatusNotFound, "Memory not found")
	case errors.Is(err, services.ErrNotOwner):
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseDateParam accepts RFC 3339 date-times and bare calendar dates. A bare
// endDate means end-of-day, so the range stays inclusive for date-only
// clients.
func parseDateParam(value string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}
