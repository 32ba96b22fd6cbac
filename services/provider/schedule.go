package provider

import (
	"context"
	"fmt"

	"bookwell/models"
	"bookwell/services/availability"
)

func (s *DefaultProviderService) GetSchedule(ctx context.Context, id string) ([]models.ScheduleDay, error) {
	return s.Repo.GetSchedule(ctx, id)
}

// SetSchedule replaces the provider's weekly schedule. Rows are validated
// strictly on write; the read path stays tolerant of legacy data. A day
// marked unavailable needs no times at all.
func (s *DefaultProviderService) SetSchedule(ctx context.Context, id string, rows []models.ScheduleDay) error {
	seen := map[int]bool{}
	for i, row := range rows {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
			return fmt.Errorf("row %d: dayOfWeek %d out of range 0..6", i, row.DayOfWeek)
		}
		if seen[row.DayOfWeek] {
			return fmt.Errorf("row %d: duplicate dayOfWeek %d", i, row.DayOfWeek)
		}
		seen[row.DayOfWeek] = true
		if !row.IsAvailable {
			continue
		}
		if len(row.TimeSlots) > 0 {
			for j, slot := range row.TimeSlots {
				if err := availability.ValidateSlot(row.DayOfWeek, slot.StartTime, slot.EndTime); err != nil {
					return fmt.Errorf("row %d slot %d: %w", i, j, err)
				}
			}
			continue
		}
		if err := availability.ValidateSlot(row.DayOfWeek, row.StartTime, row.EndTime); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return s.Repo.SetSchedule(ctx, id, rows)
}
