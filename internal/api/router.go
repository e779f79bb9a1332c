package api

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend-go/internal/handler"
	"github.com/mindwell/backend-go/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	journalHandler *handler.JournalHandler,
	moodHandler *handler.MoodHandler,
	appointmentHandler *handler.AppointmentHandler,
	counselorHandler *handler.CounselorHandler,
	resourceHandler *handler.ResourceHandler,
	userHandler *handler.UserHandler,
	intakeHandler *handler.IntakeHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Public directory reads
	r.GET("/api/counselors", counselorHandler.List)
	r.GET("/api/resources", resourceHandler.List)
	r.POST("/api/contact", intakeHandler.CreateContact)
	r.POST("/api/feedback", authMiddleware.OptionalAuth(), intakeHandler.CreateFeedback)

	// Owner-scoped routes
	private := r.Group("/api")
	private.Use(authMiddleware.RequireAuth())
	{
		private.GET("/journal", journalHandler.List)
		private.POST("/journal", journalHandler.Create)

		private.GET("/mood", moodHandler.List)
		private.POST("/mood", moodHandler.Log)

		private.GET("/appointments", appointmentHandler.List)
		private.POST("/appointments", appointmentHandler.Create)

		private.POST("/reports", intakeHandler.CreateReport)

		// Resource mutations require a login but no particular role
		private.POST("/resources", resourceHandler.Create)
		private.PUT("/resources/:id", resourceHandler.Update)
		private.DELETE("/resources/:id", resourceHandler.Delete)
	}

	// Admin routes
	admin := r.Group("/api")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.POST("/counselors", counselorHandler.Create)
		admin.PUT("/counselors/:id", counselorHandler.Update)
		admin.DELETE("/counselors/:id", counselorHandler.Delete)

		admin.GET("/users", userHandler.ListStudents)
		admin.PUT("/users/:id/suspend", userHandler.Suspend)

		admin.GET("/feedback", intakeHandler.ListFeedback)
		admin.PUT("/feedback/:id/status", intakeHandler.UpdateFeedbackStatus)
		admin.GET("/reports", intakeHandler.ListReports)
		admin.GET("/contact", intakeHandler.ListContacts)
	}

	return r
}
