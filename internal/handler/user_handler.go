package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
)

// UserHandler handles admin HTTP requests for user management
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user management handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// ListStudents handles GET /api/users (admin)
func (h *UserHandler) ListStudents(c *gin.Context) {
	users, err := h.service.ListStudents()
	if err != nil {
		h.logger.Error("❌ [UserHandler] Failed to list students", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, users, len(users))
}

// Suspend handles PUT /api/users/:id/suspend (admin)
func (h *UserHandler) Suspend(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.service.SuspendUser(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("❌ [UserHandler] Failed to suspend user", "error", err, "user_id", id)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondMessage(c, http.StatusOK, fmt.Sprintf("User %s has been suspended.", user.Name))
}
