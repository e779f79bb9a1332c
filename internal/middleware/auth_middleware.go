package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
)

// ContextUserKey is the gin context key holding the authenticated user
const ContextUserKey = "user"

// AuthMiddleware handles JWT validation and user resolution
type AuthMiddleware struct {
	service  service.AuthService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service:  service,
		userRepo: userRepo,
		logger:   logger,
	}
}

// RequireAuth validates the bearer token, loads the user it identifies and
// stores it in the request context. A token whose user no longer exists is
// rejected the same way as an invalid one.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authorized to access this route",
			})
			return
		}

		c.Set(ContextUserKey, user)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", user.ID)

		c.Next()
	}
}

// OptionalAuth resolves the user when a valid bearer token is present but
// never rejects the request. Used by endpoints that accept anonymous
// submissions.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := m.resolveUser(c); ok {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			m.logger.Warn("⚠️ [Middleware] Admin route denied", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "User is not authorized to perform this action",
			})
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolveUser(c *gin.Context) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
		return nil, false
	}

	userID, err := m.service.ValidateToken(parts[1])
	if err != nil {
		m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
		return nil, false
	}

	user, err := m.userRepo.FindByID(userID)
	if err != nil {
		m.logger.Warn("⚠️ [Middleware] Token for unknown user", "user_id", userID)
		return nil, false
	}

	return user, true
}

// CurrentUser returns the authenticated user stored by RequireAuth or
// OptionalAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
