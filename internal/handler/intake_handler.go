package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/middleware"
)

// IntakeHandler handles feedback, problem report and contact submissions
type IntakeHandler struct {
	feedbackRepo repository.FeedbackRepository
	reportRepo   repository.ReportRepository
	contactRepo  repository.ContactRepository
	logger       *slog.Logger
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(
	feedbackRepo repository.FeedbackRepository,
	reportRepo repository.ReportRepository,
	contactRepo repository.ContactRepository,
	logger *slog.Logger,
) *IntakeHandler {
	return &IntakeHandler{
		feedbackRepo: feedbackRepo,
		reportRepo:   reportRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

type FeedbackRequest struct {
	Category string `json:"category" binding:"required,oneof=suggestion technical-issue general-feedback"`
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type FeedbackStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in-progress resolved"`
}

type ReportRequest struct {
	Category         string `json:"category" binding:"required,oneof=login-issue dashboard-bug chat-problem page-loading other"`
	Description      string `json:"description" binding:"required"`
	StepsToReproduce string `json:"steps_to_reproduce"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CreateFeedback handles POST /api/feedback. Login is optional; when a valid
// token accompanied the request the submission is linked to that user.
func (h *IntakeHandler) CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Category, subject and message are required")
		return
	}

	feedback := &models.Feedback{
		Category: req.Category,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		feedback.UserID = &user.ID
	}

	if err := h.feedbackRepo.Create(feedback); err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to store feedback", "error", err)
		respondError(c, http.StatusBadRequest, "Error submitting feedback")
		return
	}

	respondData(c, http.StatusCreated, feedback)
}

// ListFeedback handles GET /api/feedback (admin)
func (h *IntakeHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackRepo.FindAll()
	if err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to list feedback", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, feedback, len(feedback))
}

// UpdateFeedbackStatus handles PUT /api/feedback/:id/status (admin)
func (h *IntakeHandler) UpdateFeedbackStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req FeedbackStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Status must be new, in-progress or resolved")
		return
	}

	feedback, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			respondError(c, http.StatusNotFound, "Feedback not found")
			return
		}
		h.logger.Error("❌ [IntakeHandler] Failed to load feedback", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	feedback.Status = req.Status
	if err := h.feedbackRepo.Update(feedback); err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to update feedback", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondData(c, http.StatusOK, feedback)
}

// CreateReport handles POST /api/reports
func (h *IntakeHandler) CreateReport(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Category and description are required")
		return
	}

	report := &models.Report{
		UserID:           user.ID,
		Category:         req.Category,
		Description:      req.Description,
		StepsToReproduce: req.StepsToReproduce,
	}

	if err := h.reportRepo.Create(report); err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to store report", "error", err, "user_id", user.ID)
		respondError(c, http.StatusBadRequest, "Error submitting report")
		return
	}

	respondData(c, http.StatusCreated, report)
}

// ListReports handles GET /api/reports (admin)
func (h *IntakeHandler) ListReports(c *gin.Context) {
	reports, err := h.reportRepo.FindAll()
	if err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to list reports", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, reports, len(reports))
}

// CreateContact handles POST /api/contact (public)
func (h *IntakeHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.contactRepo.Create(contact); err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to store contact submission", "error", err)
		respondError(c, http.StatusBadRequest, "Error submitting message")
		return
	}

	respondData(c, http.StatusCreated, contact)
}

// ListContacts handles GET /api/contact (admin)
func (h *IntakeHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactRepo.FindAll()
	if err != nil {
		h.logger.Error("❌ [IntakeHandler] Failed to list contact submissions", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, contacts, len(contacts))
}
