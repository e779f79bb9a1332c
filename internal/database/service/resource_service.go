package service

import (
	"context"
	"log/slog"

	"github.com/mindwell/backend-go/internal/database"
	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

// ResourceService defines the interface for resource library business logic
type ResourceService interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
	UpdateResource(ctx context.Context, id uint, title, resourceType, topic, link, img string) (*models.Resource, error)
	DeleteResource(ctx context.Context, id uint) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	cache        *database.RedisClient
	logger       *slog.Logger
}

// NewResourceService creates a new resource service instance. cache may be
// nil, in which case every list hits the database.
func NewResourceService(resourceRepo repository.ResourceRepository, cache *database.RedisClient, logger *slog.Logger) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *resourceService) ListResources(ctx context.Context) ([]models.Resource, error) {
	if s.cache != nil {
		var cached []models.Resource
		if s.cache.GetJSON(ctx, database.CacheKeyResources, &cached) {
			s.logger.Debug("⚡ [ResourceService] Serving resources from cache")
			return cached, nil
		}
	}

	resources, err := s.resourceRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, database.CacheKeyResources, resources)
	}
	return resources, nil
}

func (s *resourceService) CreateResource(ctx context.Context, resource *models.Resource) error {
	if err := s.resourceRepo.Create(resource); err != nil {
		s.logger.Error("❌ [ResourceService] Failed to create resource", "error", err)
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [ResourceService] Resource created", "resource_id", resource.ID)
	return nil
}

func (s *resourceService) UpdateResource(ctx context.Context, id uint, title, resourceType, topic, link, img string) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resource.Title = title
	resource.Type = resourceType
	resource.Topic = topic
	resource.Link = link
	resource.Img = img

	if err := s.resourceRepo.Update(resource); err != nil {
		s.logger.Error("❌ [ResourceService] Failed to update resource", "error", err)
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [ResourceService] Resource updated", "resource_id", resource.ID)
	return resource, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, id uint) error {
	if _, err := s.resourceRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(id); err != nil {
		s.logger.Error("❌ [ResourceService] Failed to delete resource", "error", err)
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [ResourceService] Resource deleted", "resource_id", id)
	return nil
}

func (s *resourceService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, database.CacheKeyResources)
	}
}
