package suggestion

import (
	"context"
	"time"

	"bookwell/models"
	"bookwell/services/availability"
)

// The suggestion engine consumes its collaborators through the narrowest
// interfaces it needs; the Mongo repositories satisfy these structurally.
type (
	ConsumerAvailabilitySource interface {
		GetAvailability(ctx context.Context, id string) ([]models.ConsumerSlot, error)
	}
	ProviderScheduleSource interface {
		GetSchedule(ctx context.Context, id string) ([]models.ScheduleDay, error)
	}
	ServiceSource interface {
		GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	}
	CommitmentSource interface {
		FindActiveForConsumerOrService(ctx context.Context, consumerID, serviceID string) ([]models.Commitment, error)
	}
)

// SuggestionInput is the request-scoped context a Suggester works from.
// Everything is fetched fresh per request; nothing here is shared state.
type SuggestionInput struct {
	ConsumerID  string
	Service     models.Service
	Windows     availability.Set
	Active      []models.Commitment
	TargetCount int
	Now         time.Time
}

// Suggester produces candidate appointment times from common availability
// windows. The deterministic variant is the baseline; the generative
// variant decorates it and always re-validates through the same conflict
// filter.
type Suggester interface {
	Suggest(ctx context.Context, in SuggestionInput) ([]models.Candidate, error)
}

// SuggestionService is the exposed suggestion operation.
type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, consumerID, serviceID string, targetCount int) ([]models.Candidate, error)
}

// DefaultSuggestionService implements SuggestionService over the profile
// repositories and a pluggable Suggester.
type DefaultSuggestionService struct {
	ConsumerRepo   ConsumerAvailabilitySource
	ProviderRepo   ProviderScheduleSource
	CatalogRepo    ServiceSource
	CommitmentRepo CommitmentSource
	Suggester      Suggester

	// Clock returns the current time; injectable for deterministic tests.
	Clock func() time.Time
}
