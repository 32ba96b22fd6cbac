package cron

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bookwell/services/booking"
	"bookwell/utils"
)

// StartExpirySweeper periodically finalizes commitments whose interval has
// passed. Runs until the context is cancelled.
func StartExpirySweeper(ctx context.Context, svc booking.BookingService, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				swept, err := svc.SweepExpired(ctx, time.Now())
				if err != nil {
					logger.Error("expiry sweep failed", zap.Error(err))
					continue
				}
				if swept > 0 {
					logger.Info("finalized expired commitments", zap.Int("count", swept))
				}
			}
		}
	}()
}
