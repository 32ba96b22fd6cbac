package consumerRepo

import (
	"context"

	"bookwell/models"
)

// ConsumerRepository defines persistence operations for consumer accounts.
type ConsumerRepository interface {
	Create(ctx context.Context, c *models.Consumer) error
	GetByID(ctx context.Context, id string) (*models.Consumer, error)
	GetByEmail(ctx context.Context, email string) (*models.Consumer, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// GetAvailability returns the raw recurring availability slots as stored;
	// parsing into the canonical form happens at the availability boundary.
	GetAvailability(ctx context.Context, id string) ([]models.ConsumerSlot, error)
	SetAvailability(ctx context.Context, id string, slots []models.ConsumerSlot) error

	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
