package commitmentRepo

import (
	"context"

	"bookwell/models"
)

// ServiceCount is an aggregation row for admin analytics.
type ServiceCount struct {
	ServiceID string `bson:"_id" json:"serviceId"`
	Count     int64  `bson:"count" json:"count"`
}

// CommitmentRepository defines persistence operations for commitments.
type CommitmentRepository interface {
	Insert(ctx context.Context, c *models.Commitment) error
	GetByID(ctx context.Context, id string) (*models.Commitment, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// FindActiveByProviderAndDate returns pending/confirmed commitments for
	// one provider on one date. This is the read the booking guard relies on.
	FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Commitment, error)

	// FindActiveForConsumerOrService returns pending/confirmed commitments
	// sharing either the consumer or the service, for suggestion filtering.
	FindActiveForConsumerOrService(ctx context.Context, consumerID, serviceID string) ([]models.Commitment, error)

	ListByConsumer(ctx context.Context, consumerID string) ([]models.Commitment, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Commitment, error)

	// FindActiveEndedBefore returns active commitments whose end time has
	// already passed, for the expiry sweeper.
	FindActiveEndedBefore(ctx context.Context, dateCutoff string, minuteCutoff int) ([]models.Commitment, error)

	CountByStatus(ctx context.Context) (map[string]int64, error)
	TopServices(ctx context.Context, limit int) ([]ServiceCount, error)
}
