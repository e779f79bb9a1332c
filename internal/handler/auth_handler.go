package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/service"
	"github.com/mindwell/backend-go/internal/middleware"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	limiter middleware.LoginLimiter
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, limiter middleware.LoginLimiter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		limiter: limiter,
		logger:  logger,
	}
}

// Request DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=student admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [Handler] Invalid registration request", "error", err)
		respondError(c, http.StatusBadRequest, "Invalid request. Name, email and password (min 6 chars) required.")
		return
	}

	user, token, err := h.service.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusCreated, user, token)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [Handler] Invalid login request", "error", err)
		respondError(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	allowed, _ := h.limiter.Allow(c.Request.Context(), req.Email)
	if !allowed {
		h.logger.Warn("⚠️ [Handler] Login throttled", "email", req.Email)
		respondError(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if lerr := h.limiter.RecordFailure(c.Request.Context(), req.Email); lerr != nil {
				h.logger.Warn("⚠️ [Handler] Failed to record login failure", "error", lerr)
			}
		}
		h.handleServiceError(c, err)
		return
	}

	if err := h.limiter.Reset(c.Request.Context(), req.Email); err != nil {
		h.logger.Warn("⚠️ [Handler] Failed to reset login counter", "error", err)
	}

	h.sendTokenResponse(c, http.StatusOK, user, token)
}

// sendTokenResponse writes the token plus the public user projection. The
// password hash never leaves the server.
func (h *AuthHandler) sendTokenResponse(c *gin.Context, status int, user *models.User, token string) {
	c.JSON(status, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// handleServiceError maps service errors to HTTP responses
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrAccountSuspended):
		respondError(c, http.StatusForbidden, "Account suspended")
	case errors.Is(err, service.ErrInvalidRole):
		respondError(c, http.StatusBadRequest, "Invalid role")
	default:
		h.logger.Error("❌ [Handler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
	}
}
