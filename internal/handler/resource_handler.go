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

// ResourceHandler handles HTTP requests for the resource library
type ResourceHandler struct {
	service service.ResourceService
	logger  *slog.Logger
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(service service.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		logger:  logger,
	}
}

type ResourceRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=article video music meditation"`
	Topic string `json:"topic" binding:"required,oneof=stress anxiety focus sleep breathe"`
	Link  string `json:"link" binding:"required"`
	Img   string `json:"img" binding:"required"`
}

// List handles GET /api/resources (public)
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.service.ListResources(c.Request.Context())
	if err != nil {
		h.logger.Error("❌ [ResourceHandler] Failed to list resources", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	respondList(c, resources, len(resources))
}

// Create handles POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Title, type, topic, link and img are required")
		return
	}

	resource := &models.Resource{
		Title: req.Title,
		Type:  req.Type,
		Topic: req.Topic,
		Link:  req.Link,
		Img:   req.Img,
	}

	if err := h.service.CreateResource(c.Request.Context(), resource); err != nil {
		respondError(c, http.StatusBadRequest, "Error creating resource")
		return
	}

	respondData(c, http.StatusCreated, resource)
}

// Update handles PUT /api/resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Title, type, topic, link and img are required")
		return
	}

	resource, err := h.service.UpdateResource(c.Request.Context(), id, req.Title, req.Type, req.Topic, req.Link, req.Img)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, resource)
}

// Delete handles DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteResource(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

func (h *ResourceHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, "Resource not found")
	default:
		h.logger.Error("❌ [ResourceHandler] Internal server error", "error", err)
		respondError(c, http.StatusInternalServerError, "Server Error")
	}
}
