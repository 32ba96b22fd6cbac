package catalogRepo

import (
	"context"

	"bookwell/models"
)

// CatalogRepository defines persistence operations for categories and services.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, cat *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, svc *models.Service) error
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, fields map[string]interface{}) error
	DeactivateService(ctx context.Context, id string) error
}
