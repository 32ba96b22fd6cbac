package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	commitmentRepo "bookwell/database/repository/commitment"
	"bookwell/models"
	"bookwell/services/availability"
	"bookwell/utils"
)

// ValidateAndCreateCommitment runs the authoritative conflict check and,
// if it passes, persists a pending commitment. A storage-level duplicate
// on the active-slot index is reported as a slot conflict so the caller
// can retry a different time.
func (s *DefaultBookingService) ValidateAndCreateCommitment(ctx context.Context, consumerID, serviceID, date, startTime string) (*models.Commitment, error) {
	svc, err := s.CatalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}

	start, err := availability.ToMinutes(startTime)
	if err != nil {
		return nil, err
	}
	end := start + svc.DurationMinutes
	if end > availability.MinutesPerDay {
		end = availability.MinutesPerDay
	}

	now := s.now()
	if err := s.Guard.Check(ctx, svc.ProviderID, date, start, end, now); err != nil {
		return nil, err
	}

	cm := &models.Commitment{
		ID:         uuid.New().String(),
		ConsumerID: consumerID,
		ProviderID: svc.ProviderID,
		ServiceID:  serviceID,
		Date:       date,
		Start:      start,
		End:        end,
		Status:     models.CommitmentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Insert(ctx, cm); err != nil {
		if commitmentRepo.ErrDuplicateSlot(err) {
			// Another confirm won the slot between our read and this write.
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}

	utils.GetLogger().Info("commitment created",
		zap.String("commitmentId", cm.ID),
		zap.String("providerId", cm.ProviderID),
		zap.String("date", cm.Date),
		zap.Int("start", cm.Start))
	return cm, nil
}

// ConfirmCommitment moves a pending commitment to confirmed. Only the
// owning consumer may confirm.
func (s *DefaultBookingService) ConfirmCommitment(ctx context.Context, consumerID, id string) (*models.Commitment, error) {
	cm, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cm.ConsumerID != consumerID {
		return nil, fmt.Errorf("commitment %s does not belong to consumer %s", id, consumerID)
	}
	if cm.IsTerminal() {
		return nil, ErrTerminalStatus
	}
	if cm.Status == models.CommitmentConfirmed {
		return cm, nil
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.CommitmentConfirmed); err != nil {
		return nil, err
	}
	cm.Status = models.CommitmentConfirmed
	return cm, nil
}

// CancelCommitment cancels an active commitment. Consumer and provider may
// both cancel their own commitments; terminal commitments never change.
func (s *DefaultBookingService) CancelCommitment(ctx context.Context, requesterID, id string) error {
	cm, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cm.ConsumerID != requesterID && cm.ProviderID != requesterID {
		return fmt.Errorf("commitment %s does not involve %s", id, requesterID)
	}
	if cm.IsTerminal() {
		return ErrTerminalStatus
	}
	return s.Repo.UpdateStatus(ctx, id, models.CommitmentCancelled)
}

func (s *DefaultBookingService) ListForConsumer(ctx context.Context, consumerID string) ([]models.Commitment, error) {
	return s.Repo.ListByConsumer(ctx, consumerID)
}

func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string) ([]models.Commitment, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// SweepExpired finalizes active commitments whose interval has fully
// passed: confirmed ones become completed, pending ones that were never
// confirmed become no_show. Returns how many were transitioned.
func (s *DefaultBookingService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	minuteOfDay := int(now.Sub(dayStart) / time.Minute)

	expired, err := s.Repo.FindActiveEndedBefore(ctx, now.Format(availability.DateLayout), minuteOfDay)
	if err != nil {
		return 0, fmt.Errorf("failed to load expired commitments: %w", err)
	}

	logger := utils.GetLogger()
	swept := 0
	for _, cm := range expired {
		next := models.CommitmentCompleted
		if cm.Status == models.CommitmentPending {
			next = models.CommitmentNoShow
		}
		if err := s.Repo.UpdateStatus(ctx, cm.ID, next); err != nil {
			logger.Warn("failed to finalize expired commitment",
				zap.String("commitmentId", cm.ID), zap.Error(err))
			continue
		}
		swept++
	}
	return swept, nil
}
