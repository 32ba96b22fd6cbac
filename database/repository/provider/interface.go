package providerRepo

import (
	"context"

	"bookwell/models"
)

// ProviderRepository defines persistence operations for provider accounts.
type ProviderRepository interface {
	Create(ctx context.Context, p *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// GetSchedule returns the weekly schedule rows as stored, one per day.
	GetSchedule(ctx context.Context, id string) ([]models.ScheduleDay, error)
	SetSchedule(ctx context.Context, id string, rows []models.ScheduleDay) error

	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
