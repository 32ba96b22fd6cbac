package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogRepo "bookwell/database/repository/catalog"
	"bookwell/models"
	"bookwell/services/availability"
)

// CatalogService manages categories and the bookable services providers
// publish under them.
type CatalogService interface {
	CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, providerID string, svc models.Service) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Service, error)
	UpdateService(ctx context.Context, providerID, id string, fields map[string]interface{}) (*models.Service, error)
	DeactivateService(ctx context.Context, providerID, id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	if cat.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	cat.ID = uuid.New().String()
	cat.CreatedAt = time.Now()
	if err := s.Repo.CreateCategory(ctx, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *DefaultCatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.Repo.DeleteCategory(ctx, id)
}

// CreateService publishes a new offering for the given provider. The slot
// mask, when present, must parse cleanly; suggestion-time parsing tolerates
// bad rows but new data is held to the strict rules.
func (s *DefaultCatalogService) CreateService(ctx context.Context, providerID string, svc models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 || svc.DurationMinutes > availability.MinutesPerDay {
		return nil, fmt.Errorf("durationMinutes must be between 1 and %d", availability.MinutesPerDay)
	}
	if svc.CategoryID != "" {
		if _, err := s.Repo.GetCategory(ctx, svc.CategoryID); err != nil {
			return nil, fmt.Errorf("unknown category %s: %w", svc.CategoryID, err)
		}
	}
	for i, slot := range svc.SlotMask {
		if err := availability.ValidateSlot(slot.DayOfWeek, slot.StartTime, slot.EndTime); err != nil {
			return nil, fmt.Errorf("slotMask %d: %w", i, err)
		}
	}

	now := time.Now()
	svc.ID = uuid.New().String()
	svc.ProviderID = providerID
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.Repo.CreateService(ctx, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetServiceByID(ctx, id)
}

func (s *DefaultCatalogService) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return s.Repo.ListServicesByProvider(ctx, providerID)
}

func (s *DefaultCatalogService) ListByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	return s.Repo.ListServicesByCategory(ctx, categoryID)
}

var updatableFields = map[string]bool{
	"name":            true,
	"description":     true,
	"durationMinutes": true,
	"price":           true,
	"slotMask":        true,
	"imageUrl":        true,
	"active":          true,
}

// UpdateService applies a partial update after checking ownership.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, providerID, id string, fields map[string]interface{}) (*models.Service, error) {
	svc, err := s.Repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != providerID {
		return nil, fmt.Errorf("service %s does not belong to provider %s", id, providerID)
	}

	filtered := map[string]interface{}{}
	for k, v := range fields {
		if updatableFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if d, ok := filtered["durationMinutes"]; ok {
		if n, ok := toInt(d); !ok || n <= 0 || n > availability.MinutesPerDay {
			return nil, fmt.Errorf("durationMinutes must be between 1 and %d", availability.MinutesPerDay)
		}
	}
	filtered["updatedAt"] = time.Now()

	if err := s.Repo.UpdateService(ctx, id, filtered); err != nil {
		return nil, err
	}
	return s.Repo.GetServiceByID(ctx, id)
}

func (s *DefaultCatalogService) DeactivateService(ctx context.Context, providerID, id string) error {
	svc, err := s.Repo.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ProviderID != providerID {
		return fmt.Errorf("service %s does not belong to provider %s", id, providerID)
	}
	return s.Repo.DeactivateService(ctx, id)
}

// toInt accepts the numeric shapes a decoded JSON body can carry.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
