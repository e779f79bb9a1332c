package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
)

// CounselorHandler handles HTTP requests for the counselor directory
type CounselorHandler struct {
	service service.CounselorService
	logger  *slog.Logger
}

// NewCounselorHandler creates a new counselor handler
func NewCounselorHandler(service service.CounselorService, logger *slog.Logger) *CounselorHandler {
	return &CounselorHandler{
		service: service,
		logger:  logger,
	}
}

type CounselorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Bio       string `json:"bio" binding:"required"`
}

// List handles GET /api/counselors (public)
func (h *CounselorHandler) List(c *gin.Context) {
	counselors, err := h.service.ListCounselors(c.Request.Context())
	if err != nil {
		h.logger.Error("❌ [CounselorHandler] Failed to list counselors", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, counselors, len(counselors))
}

// Create handles POST /api/counselors (admin)
func (h *CounselorHandler) Create(c *gin.Context) {
	var req CounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, specialty and bio are required")
		return
	}

	counselor := &models.Counselor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Bio:       req.Bio,
	}

	if err := h.service.CreateCounselor(c.Request.Context(), counselor); err != nil {
		respondError(c, http.StatusBadRequest, "Error creating counselor")
		return
	}

	respondData(c, http.StatusCreated, counselor)
}

// Update handles PUT /api/counselors/:id (admin)
func (h *CounselorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, specialty and bio are required")
		return
	}

	counselor, err := h.service.UpdateCounselor(c.Request.Context(), id, req.Name, req.Specialty, req.Bio)
	if err != nil {
		h.handleServiceError(c, err, "Default counselors cannot be modified.")
		return
	}

	respondData(c, http.StatusOK, counselor)
}

// Delete handles DELETE /api/counselors/:id (admin)
func (h *CounselorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCounselor(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Default counselors cannot be deleted.")
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

func (h *CounselorHandler) handleServiceError(c *gin.Context, err error, immutableMsg string) {
	switch {
	case errors.Is(err, repository.ErrCounselorNotFound):
		respondError(c, http.StatusNotFound, "Counselor not found")
	case errors.Is(err, service.ErrDefaultCounselor):
		respondError(c, http.StatusBadRequest, immutableMsg)
	default:
		h.logger.Error("❌ [CounselorHandler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
	}
}
