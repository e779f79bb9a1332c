package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/middleware"
)

// AppointmentHandler handles HTTP requests for appointment booking
type AppointmentHandler struct {
	appointmentRepo repository.AppointmentRepository
	logger          *slog.Logger
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentRepo repository.AppointmentRepository, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

type CreateAppointmentRequest struct {
	Counselor string `json:"counselor" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=Online In-Person"`
}

// List handles GET /api/appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	appointments, err := h.appointmentRepo.FindByUser(user.ID)
	if err != nil {
		h.logger.Error("❌ [AppointmentHandler] Failed to list appointments", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, appointments, len(appointments))
}

// Create handles POST /api/appointments. The owner is always the
// authenticated caller, regardless of the payload.
func (h *AppointmentHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Counselor, date, time and type (Online or In-Person) are required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	appointment := &models.Appointment{
		UserID:    user.ID,
		Counselor: req.Counselor,
		Date:      date,
		Time:      req.Time,
		Type:      req.Type,
		Status:    models.StatusUpcoming,
	}

	if err := h.appointmentRepo.Create(appointment); err != nil {
		h.logger.Error("❌ [AppointmentHandler] Failed to create appointment", "error", err, "user_id", user.ID)
		respondError(c, http.StatusBadRequest, "Error creating appointment")
		return
	}

	respondData(c, http.StatusCreated, appointment)
}
