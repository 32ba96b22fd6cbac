package availability

import (
	"testing"
	"time"

	"bookwell/models"
)

// Saturday 2024-06-01, noon UTC.
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateCandidatesSpreadsAcrossWeeks(t *testing.T) {
	windows := setOf(models.WeeklyInterval{DayOfWeek: 1, Start: 600, End: 660}) // Mon 10:00-11:00

	got := GenerateCandidates(windows, 4, 30, testNow)

	wantDates := []string{"2024-06-03", "2024-06-10", "2024-06-17", "2024-06-24"}
	if len(got) != 4 {
		t.Fatalf("candidates = %d, want 4", len(got))
	}
	for i, c := range got {
		if c.Date != wantDates[i] {
			t.Errorf("candidate %d date = %s, want %s", i, c.Date, wantDates[i])
		}
		if c.StartTime != "10:00" || c.EndTime != "10:30" {
			t.Errorf("candidate %d time = %s-%s, want 10:00-10:30", i, c.StartTime, c.EndTime)
		}
		if c.Source != models.CandidateSourceGenerated {
			t.Errorf("candidate %d source = %s, want generated", i, c.Source)
		}
	}
}

func TestGenerateCandidatesNeverExceedsTargetCount(t *testing.T) {
	windows := setOf(
		models.WeeklyInterval{DayOfWeek: 1, Start: 540, End: 600},
		models.WeeklyInterval{DayOfWeek: 2, Start: 540, End: 600},
		models.WeeklyInterval{DayOfWeek: 3, Start: 540, End: 600},
	)

	for _, target := range []int{1, 2, 5, 12} {
		got := GenerateCandidates(windows, target, 60, testNow)
		if len(got) > target {
			t.Errorf("targetCount %d produced %d candidates", target, len(got))
		}
	}
}

func TestGenerateCandidatesNeverEmitsPastDates(t *testing.T) {
	// A window on the current weekday, earlier in the day.
	windows := setOf(models.WeeklyInterval{DayOfWeek: 6, Start: 540, End: 600}) // Sat 09:00

	got := GenerateCandidates(windows, 12, 30, testNow)
	for _, c := range got {
		start, err := CandidateStart(c, time.UTC)
		if err != nil {
			t.Fatalf("unparseable candidate %+v: %v", c, err)
		}
		if start.Before(testNow) {
			t.Errorf("candidate %s %s is before now", c.Date, c.StartTime)
		}
	}
	// Week 0 occurrence is already past; only three future Saturdays fit.
	if len(got) != 3 {
		t.Errorf("candidates = %d, want 3", len(got))
	}
}

func TestGenerateCandidatesStableWindowOrder(t *testing.T) {
	windows := setOf(
		models.WeeklyInterval{DayOfWeek: 3, Start: 540, End: 600},
		models.WeeklyInterval{DayOfWeek: 1, Start: 840, End: 900},
		models.WeeklyInterval{DayOfWeek: 1, Start: 600, End: 660},
	)

	got := GenerateCandidates(windows, 3, 30, testNow)
	if len(got) != 3 {
		t.Fatalf("candidates = %d, want 3", len(got))
	}
	// Week 0 walks windows by day, then start: Mon 10:00, Mon 14:00, Wed 09:00.
	if got[0].DayOfWeek != 1 || got[0].StartTime != "10:00" {
		t.Errorf("first candidate = %+v, want Monday 10:00", got[0])
	}
	if got[1].DayOfWeek != 1 || got[1].StartTime != "14:00" {
		t.Errorf("second candidate = %+v, want Monday 14:00", got[1])
	}
	if got[2].DayOfWeek != 3 || got[2].StartTime != "09:00" {
		t.Errorf("third candidate = %+v, want Wednesday 09:00", got[2])
	}
}

func TestGenerateCandidatesEmptyWindows(t *testing.T) {
	if got := GenerateCandidates(Set{}, 5, 30, testNow); len(got) != 0 {
		t.Errorf("empty windows should yield no candidates, got %+v", got)
	}
}

func TestGenerateCandidatesFewerPairsThanTarget(t *testing.T) {
	// One window, four weeks: at most 4 candidates regardless of target.
	windows := setOf(models.WeeklyInterval{DayOfWeek: 2, Start: 540, End: 600})

	got := GenerateCandidates(windows, 12, 30, testNow)
	if len(got) != 4 {
		t.Errorf("candidates = %d, want 4 (never fabricate extras)", len(got))
	}
}
