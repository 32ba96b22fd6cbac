package suggestion

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookwell/models"
	"bookwell/services/availability"
	"bookwell/utils"
)

// GenerateSuggestions computes candidate appointment times for a consumer
// and a service. It normalizes the three availability encodings, intersects
// them, and hands the common windows to the configured Suggester. An empty
// result is a valid outcome, not an error.
func (s *DefaultSuggestionService) GenerateSuggestions(ctx context.Context, consumerID, serviceID string, targetCount int) ([]models.Candidate, error) {
	logger := utils.GetLogger()

	if targetCount < 1 {
		targetCount = 1
	}
	if targetCount > availability.MaxCandidates {
		targetCount = availability.MaxCandidates
	}

	svc, err := s.CatalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("service %s is not active", serviceID)
	}

	rawSlots, err := s.ConsumerRepo.GetAvailability(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consumer availability: %w", err)
	}
	schedule, err := s.ProviderRepo.GetSchedule(ctx, svc.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider schedule: %w", err)
	}

	consumerSet := availability.ParseConsumerSlots(rawSlots, logger)
	providerSet := availability.ParseProviderSchedule(schedule, logger)
	mask := availability.ParseServiceMask(svc.SlotMask, logger)

	effective := availability.EffectiveProviderAvailability(providerSet, mask)
	windows := availability.CommonWindows(effective, consumerSet)
	if len(windows) == 0 {
		logger.Debug("no common availability windows",
			zap.String("consumerId", consumerID), zap.String("serviceId", serviceID))
		return []models.Candidate{}, nil
	}

	active, err := s.CommitmentRepo.FindActiveForConsumerOrService(ctx, consumerID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active commitments: %w", err)
	}

	in := SuggestionInput{
		ConsumerID:  consumerID,
		Service:     *svc,
		Windows:     windows,
		Active:      active,
		TargetCount: targetCount,
		Now:         s.now(),
	}
	candidates, err := s.Suggester.Suggest(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("suggestion failed: %w", err)
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return candidates, nil
}

func (s *DefaultSuggestionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
