package consumer

import (
	"context"
	"fmt"

	"bookwell/models"
	"bookwell/services/availability"
)

func (s *DefaultConsumerService) GetAvailability(ctx context.Context, id string) ([]models.ConsumerSlot, error) {
	return s.Repo.GetAvailability(ctx, id)
}

// SetAvailability replaces the consumer's recurring weekly slots. Unlike
// the read path, which tolerates legacy malformed rows, writes are
// validated strictly so bad data never enters the collection.
func (s *DefaultConsumerService) SetAvailability(ctx context.Context, id string, slots []models.ConsumerSlot) error {
	for i, slot := range slots {
		if err := availability.ValidateSlot(slot.DayOfWeek, slot.StartTime, slot.EndTime); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return s.Repo.SetAvailability(ctx, id, slots)
}
