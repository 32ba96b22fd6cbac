package availability

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"bookwell/models"
)

func TestParseConsumerSlotsDropsMalformed(t *testing.T) {
	raw := []models.ConsumerSlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "15:00"},
		{DayOfWeek: 9, StartTime: "09:00", EndTime: "10:00"},  // bad day
		{DayOfWeek: 2, StartTime: "25:00", EndTime: "26:00"},  // bad time
		{DayOfWeek: 3, StartTime: "14:00", EndTime: "13:00"},  // inverted
		{DayOfWeek: 5, StartTime: "18:00", EndTime: "20:00"},
	}

	set := ParseConsumerSlots(raw, zap.NewNop())

	if len(set[time.Monday]) != 2 {
		t.Errorf("Monday intervals = %d, want 2", len(set[time.Monday]))
	}
	if len(set[time.Friday]) != 1 {
		t.Errorf("Friday intervals = %d, want 1", len(set[time.Friday]))
	}
	if _, ok := set[time.Tuesday]; ok {
		t.Error("malformed Tuesday entry should have been dropped")
	}
	if _, ok := set[time.Wednesday]; ok {
		t.Error("inverted Wednesday entry should have been dropped")
	}

	got := set[time.Monday][0]
	if got.Start != 540 || got.End != 720 {
		t.Errorf("Monday first interval = [%d,%d), want [540,720)", got.Start, got.End)
	}
}

func TestParseConsumerSlotsOrdersIntervals(t *testing.T) {
	raw := []models.ConsumerSlot{
		{DayOfWeek: 1, StartTime: "16:00", EndTime: "18:00"},
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"},
	}
	set := ParseConsumerSlots(raw, zap.NewNop())
	ivs := set[time.Monday]
	if len(ivs) != 2 || ivs[0].Start != 480 || ivs[1].Start != 960 {
		t.Errorf("intervals not ordered by start: %+v", ivs)
	}
}

func TestParseProviderSchedule(t *testing.T) {
	rows := []models.ScheduleDay{
		{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 2, IsAvailable: false, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 3, IsAvailable: true, TimeSlots: []models.ConsumerSlot{
			{StartTime: "08:00", EndTime: "11:00"},
			{StartTime: "14:00", EndTime: "18:00"},
		}},
		{DayOfWeek: 4, IsAvailable: true, StartTime: "bad", EndTime: "17:00"},
	}

	set := ParseProviderSchedule(rows, zap.NewNop())

	if got := set[time.Monday]; len(got) != 1 || got[0].Start != 540 || got[0].End != 1020 {
		t.Errorf("Monday = %+v, want single [540,1020)", got)
	}
	if _, ok := set[time.Tuesday]; ok {
		t.Error("unavailable Tuesday row should contribute nothing")
	}
	if got := set[time.Wednesday]; len(got) != 2 {
		t.Errorf("Wednesday intervals = %d, want 2 from explicit time slots", len(got))
	} else if got[0].DayOfWeek != 3 {
		t.Errorf("Wednesday slot dayOfWeek = %d, want 3 (inherited from row)", got[0].DayOfWeek)
	}
	if _, ok := set[time.Thursday]; ok {
		t.Error("malformed Thursday row should have been dropped")
	}
}

func TestParseServiceMaskEmptyMeansUnrestricted(t *testing.T) {
	set := ParseServiceMask(nil, zap.NewNop())
	if len(set) != 0 {
		t.Errorf("empty mask should produce empty set, got %+v", set)
	}
}

func TestParseSlotMidnightEnd(t *testing.T) {
	set := ParseConsumerSlots([]models.ConsumerSlot{
		{DayOfWeek: 6, StartTime: "22:00", EndTime: "00:00"},
	}, zap.NewNop())
	got := set[time.Saturday]
	if len(got) != 1 || got[0].End != MinutesPerDay {
		t.Errorf("slot ending at midnight = %+v, want end 1440", got)
	}
}
