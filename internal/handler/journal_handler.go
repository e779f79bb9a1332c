package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/middleware"
)

// JournalHandler handles HTTP requests for journal entries
type JournalHandler struct {
	journalRepo repository.JournalRepository
	logger      *slog.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalRepo repository.JournalRepository, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

type CreateJournalRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// List handles GET /api/journal. Entries are scoped to the authenticated
// user; there is no way to request someone else's.
func (h *JournalHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	entries, err := h.journalRepo.FindByUser(user.ID)
	if err != nil {
		h.logger.Error("❌ [JournalHandler] Failed to list entries", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, entries, len(entries))
}

// Create handles POST /api/journal
func (h *JournalHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	entry := &models.JournalEntry{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.journalRepo.Create(entry); err != nil {
		h.logger.Error("❌ [JournalHandler] Failed to create entry", "error", err, "user_id", user.ID)
		respondError(c, http.StatusBadRequest, "Error creating entry")
		return
	}

	respondData(c, http.StatusCreated, entry)
}
