package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/service"
	"github.com/mindwell/backend-go/internal/middleware"
)

// MoodHandler handles HTTP requests for mood logging
type MoodHandler struct {
	service service.MoodService
	logger  *slog.Logger
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(service service.MoodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{
		service: service,
		logger:  logger,
	}
}

type LogMoodRequest struct {
	Mood  int      `json:"mood" binding:"required,min=1,max=5"`
	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`
}

// List handles GET /api/mood
func (h *MoodHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	entries, err := h.service.ListEntries(user.ID)
	if err != nil {
		h.logger.Error("❌ [MoodHandler] Failed to list entries", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, entries, len(entries))
}

// Log handles POST /api/mood. Returns 201 for the first log of the day and
// 200 when the day's entry was overwritten.
func (h *MoodHandler) Log(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Mood between 1 and 5 is required")
		return
	}

	entry, created, err := h.service.LogMood(user.ID, req.Mood, req.Notes, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMood) {
			respondError(c, http.StatusBadRequest, "Mood between 1 and 5 is required")
			return
		}
		h.logger.Error("❌ [MoodHandler] Failed to log mood", "error", err, "user_id", user.ID)
		respondError(c, http.StatusBadRequest, "Error logging mood")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondData(c, status, entry)
}
