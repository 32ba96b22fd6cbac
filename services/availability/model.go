package availability

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"bookwell/models"
)

// Set is the canonical per-day-of-week availability representation all
// three sources normalize into. Intersection logic operates on Sets only
// and never branches on which source produced one.
type Set map[time.Weekday][]models.WeeklyInterval

// Days returns the weekdays present in the set, ascending.
func (s Set) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func (s Set) add(day int, start, end int) {
	d := time.Weekday(day)
	s[d] = append(s[d], models.WeeklyInterval{DayOfWeek: day, Start: start, End: end})
}

func sortIntervals(s Set) {
	for _, ivs := range s {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
	}
}

// parseSlot validates one encoded slot and returns its interval bounds.
func parseSlot(slot models.ConsumerSlot) (start, end int, ok bool) {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return 0, 0, false
	}
	start, err := ToMinutes(slot.StartTime)
	if err != nil {
		return 0, 0, false
	}
	end, err = ToMinutes(slot.EndTime)
	if err != nil {
		return 0, 0, false
	}
	// A slot ending exactly at midnight encodes as "00:00"; treat it as 1440.
	if end == 0 && start > 0 {
		end = MinutesPerDay
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// ValidateSlot strictly checks one encoded slot for write paths, where
// malformed input is rejected rather than dropped.
func ValidateSlot(dayOfWeek int, startTime, endTime string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek %d out of range 0..6", dayOfWeek)
	}
	start, err := ToMinutes(startTime)
	if err != nil {
		return fmt.Errorf("startTime %q: %w", startTime, err)
	}
	end, err := ToMinutes(endTime)
	if err != nil {
		return fmt.Errorf("endTime %q: %w", endTime, err)
	}
	if end == 0 && start > 0 {
		end = MinutesPerDay
	}
	if start >= end {
		return fmt.Errorf("startTime %q is not before endTime %q", startTime, endTime)
	}
	return nil
}

// ParseConsumerSlots normalizes a consumer's encoded availability entries.
// Malformed entries are dropped with a warning; partial availability data
// is expected and preferable to aborting the whole parse.
func ParseConsumerSlots(raw []models.ConsumerSlot, logger *zap.Logger) Set {
	set := make(Set)
	for _, slot := range raw {
		start, end, ok := parseSlot(slot)
		if !ok {
			logger.Warn("dropping malformed availability entry",
				zap.Int("dayOfWeek", slot.DayOfWeek),
				zap.String("startTime", slot.StartTime),
				zap.String("endTime", slot.EndTime))
			continue
		}
		set.add(slot.DayOfWeek, start, end)
	}
	sortIntervals(set)
	return set
}

// ParseProviderSchedule normalizes a provider's weekly schedule rows. A row
// carries either an explicit TimeSlots list or a single legacy interval;
// rows with IsAvailable=false contribute nothing.
func ParseProviderSchedule(rows []models.ScheduleDay, logger *zap.Logger) Set {
	set := make(Set)
	for _, row := range rows {
		if !row.IsAvailable {
			continue
		}
		if len(row.TimeSlots) > 0 {
			for _, slot := range row.TimeSlots {
				slot.DayOfWeek = row.DayOfWeek
				start, end, ok := parseSlot(slot)
				if !ok {
					logger.Warn("dropping malformed schedule slot",
						zap.Int("dayOfWeek", row.DayOfWeek),
						zap.String("startTime", slot.StartTime),
						zap.String("endTime", slot.EndTime))
					continue
				}
				set.add(row.DayOfWeek, start, end)
			}
			continue
		}
		start, end, ok := parseSlot(models.ConsumerSlot{
			DayOfWeek: row.DayOfWeek,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
		if !ok {
			logger.Warn("dropping malformed schedule row",
				zap.Int("dayOfWeek", row.DayOfWeek),
				zap.String("startTime", row.StartTime),
				zap.String("endTime", row.EndTime))
			continue
		}
		set.add(row.DayOfWeek, start, end)
	}
	sortIntervals(set)
	return set
}

// ParseServiceMask normalizes a per-service availability mask. The encoding
// matches consumer slots; an empty result means "no restriction".
func ParseServiceMask(raw []models.ConsumerSlot, logger *zap.Logger) Set {
	return ParseConsumerSlots(raw, logger)
}
