package booking

import (
	"context"
	"fmt"
	"time"

	"bookwell/models"
	"bookwell/services/availability"
)

// ActiveCommitmentFinder is the single read the guard depends on.
type ActiveCommitmentFinder interface {
	FindActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Commitment, error)
}

// ConflictGuard is the authoritative collision check executed at actual
// commitment-creation time. The suggestion path's filtering is advisory
// only; passing it does not guarantee this check will.
type ConflictGuard struct {
	Repo ActiveCommitmentFinder
}

// Check fails with ErrPastAppointment if the requested start is not in the
// future, and with ErrSlotConflict if [start, end) overlaps any active
// commitment for the provider on that date. The read here and the insert
// that follows are not atomic; the unique active-slot index on the
// commitment collection is what makes concurrent confirms safe.
func (g *ConflictGuard) Check(ctx context.Context, providerID, date string, start, end int, now time.Time) error {
	day, err := time.ParseInLocation(availability.DateLayout, date, now.Location())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if !day.Add(time.Duration(start) * time.Minute).After(now) {
		return ErrPastAppointment
	}

	active, err := g.Repo.FindActiveByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return fmt.Errorf("failed to load active commitments: %w", err)
	}
	for _, cm := range active {
		if availability.Overlaps(start, end, cm.Start, cm.End) {
			return ErrSlotConflict
		}
	}
	return nil
}
