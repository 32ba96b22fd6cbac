package availability

import (
	"fmt"
	"time"

	"bookwell/models"
)

// Planning horizon for deterministic candidate generation.
const (
	HorizonWeeks  = 4
	MaxCandidates = 12
)

// DateLayout is the calendar-date wire format used throughout.
const DateLayout = "2006-01-02"

// flattenWindows orders common windows by day of week, then start minute.
// This is the stable iteration order candidate generation relies on.
func flattenWindows(windows Set) []models.WeeklyInterval {
	var out []models.WeeklyInterval
	for _, day := range windows.Days() {
		out = append(out, windows[day]...)
	}
	return out
}

// GenerateCandidates deterministically produces up to targetCount concrete
// appointment candidates from the common windows, spread across a
// four-week horizon starting at now. For each week it walks the windows in
// stable order and emits one candidate at the window's start time, so
// results spread across weeks and days instead of front-loading into the
// nearest week. Fewer than targetCount distinct (week, window) pairs yield
// fewer candidates; extras are never fabricated.
func GenerateCandidates(windows Set, targetCount, durationMinutes int, now time.Time) []models.Candidate {
	if targetCount < 1 {
		targetCount = 1
	}
	if targetCount > MaxCandidates {
		targetCount = MaxCandidates
	}

	ordered := flattenWindows(windows)
	if len(ordered) == 0 {
		return nil
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizonEnd := dayStart.AddDate(0, 0, HorizonWeeks*7)

	var candidates []models.Candidate
	for week := 0; week < HorizonWeeks && len(candidates) < targetCount; week++ {
		for _, w := range ordered {
			if len(candidates) >= targetCount {
				break
			}
			offset := (w.DayOfWeek - int(now.Weekday()) + 7) % 7
			date := dayStart.AddDate(0, 0, week*7+offset)
			slotStart := date.Add(time.Duration(w.Start) * time.Minute)
			if slotStart.Before(now) || slotStart.After(horizonEnd) {
				continue
			}

			candidates = append(candidates, models.Candidate{
				Date:      date.Format(DateLayout),
				StartTime: ToHHMM(w.Start),
				EndTime:   ToHHMM(w.Start + durationMinutes),
				DayOfWeek: w.DayOfWeek,
				Reasoning: fmt.Sprintf("Both schedules are open on %s between %s and %s",
					time.Weekday(w.DayOfWeek), ToHHMM(w.Start), ToHHMM(w.End)),
				Confidence: "high",
				Source:     models.CandidateSourceGenerated,
			})
		}
	}
	return candidates
}
