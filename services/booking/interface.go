package booking

import (
	"context"
	"time"

	commitmentRepo "bookwell/database/repository/commitment"
	"bookwell/models"
	"bookwell/services/suggestion"
)

// BookingService manages the commitment lifecycle.
type BookingService interface {
	ValidateAndCreateCommitment(ctx context.Context, consumerID, serviceID, date, startTime string) (*models.Commitment, error)
	ConfirmCommitment(ctx context.Context, consumerID, id string) (*models.Commitment, error)
	CancelCommitment(ctx context.Context, requesterID, id string) error
	ListForConsumer(ctx context.Context, consumerID string) ([]models.Commitment, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Commitment, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        commitmentRepo.CommitmentRepository
	CatalogRepo suggestion.ServiceSource
	Guard       *ConflictGuard

	// Clock returns the current time; injectable for deterministic tests.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
