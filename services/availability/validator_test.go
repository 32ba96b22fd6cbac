package availability

import (
	"testing"

	"bookwell/models"
)

func candidate(date, start, end string, day int) models.Candidate {
	return models.Candidate{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		DayOfWeek: day,
		Source:    models.CandidateSourceGenerated,
	}
}

func TestValidateCandidatesDropsPast(t *testing.T) {
	candidates := []models.Candidate{
		candidate("2024-06-01", "09:00", "09:30", 6), // before testNow (Sat noon)
		candidate("2024-06-01", "12:00", "12:30", 6), // exactly now
		candidate("2024-06-03", "10:00", "10:30", 1),
	}

	got := ValidateCandidates(candidates, nil, "c1", "s1", testNow)
	if len(got) != 1 || got[0].Date != "2024-06-03" {
		t.Errorf("only the future candidate should survive, got %+v", got)
	}
}

func TestValidateCandidatesDropsConflicting(t *testing.T) {
	active := []models.Commitment{{
		ID:         "b1",
		ConsumerID: "c1",
		ProviderID: "p1",
		ServiceID:  "sOther",
		Date:       "2024-06-03",
		Start:      600,
		End:        630,
		Status:     models.CommitmentConfirmed,
	}}
	candidates := []models.Candidate{
		candidate("2024-06-03", "10:00", "10:30", 1), // collides
		candidate("2024-06-03", "10:30", "11:00", 1), // touches only
		candidate("2024-06-04", "10:00", "10:30", 2), // different date
	}

	got := ValidateCandidates(candidates, active, "c1", "s1", testNow)
	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2, got %+v", len(got), got)
	}
	if got[0].StartTime != "10:30" || got[1].Date != "2024-06-04" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestValidateCandidatesSharedServiceConflicts(t *testing.T) {
	// Same service, different consumer: still a conflict.
	active := []models.Commitment{{
		ConsumerID: "someoneElse",
		ServiceID:  "s1",
		Date:       "2024-06-03",
		Start:      600,
		End:        660,
		Status:     models.CommitmentPending,
	}}
	candidates := []models.Candidate{candidate("2024-06-03", "10:00", "10:30", 1)}

	if got := ValidateCandidates(candidates, active, "c1", "s1", testNow); len(got) != 0 {
		t.Errorf("shared-service conflict not excluded: %+v", got)
	}
}

func TestValidateCandidatesIgnoresUnrelatedAndTerminal(t *testing.T) {
	active := []models.Commitment{
		{
			// Unrelated consumer and service.
			ConsumerID: "cX", ServiceID: "sX",
			Date: "2024-06-03", Start: 600, End: 660,
			Status: models.CommitmentConfirmed,
		},
		{
			// Terminal status never blocks.
			ConsumerID: "c1", ServiceID: "s1",
			Date: "2024-06-03", Start: 600, End: 660,
			Status: models.CommitmentCancelled,
		},
	}
	candidates := []models.Candidate{candidate("2024-06-03", "10:00", "10:30", 1)}

	if got := ValidateCandidates(candidates, active, "c1", "s1", testNow); len(got) != 1 {
		t.Errorf("unrelated or terminal commitments must not exclude candidates: %+v", got)
	}
}

func TestValidateCandidatesBruteForceCrossProduct(t *testing.T) {
	// No returned candidate may overlap any active commitment sharing the
	// consumer or the service.
	active := []models.Commitment{
		{ConsumerID: "c1", ServiceID: "sA", Date: "2024-06-03", Start: 540, End: 660, Status: models.CommitmentPending},
		{ConsumerID: "c2", ServiceID: "s1", Date: "2024-06-04", Start: 720, End: 780, Status: models.CommitmentConfirmed},
		{ConsumerID: "c3", ServiceID: "sB", Date: "2024-06-03", Start: 540, End: 660, Status: models.CommitmentConfirmed},
	}
	var candidates []models.Candidate
	for _, date := range []string{"2024-06-03", "2024-06-04", "2024-06-05"} {
		for h := 8; h < 14; h++ {
			candidates = append(candidates, candidate(date, ToHHMM(h*60), ToHHMM(h*60+30), 0))
		}
	}

	got := ValidateCandidates(candidates, active, "c1", "s1", testNow)
	for _, c := range got {
		start, _ := ToMinutes(c.StartTime)
		end, _ := ToMinutes(c.EndTime)
		for _, cm := range active {
			if cm.ConsumerID != "c1" && cm.ServiceID != "s1" {
				continue
			}
			if cm.Date == c.Date && Overlaps(start, end, cm.Start, cm.End) {
				t.Errorf("candidate %s %s-%s overlaps commitment %+v", c.Date, c.StartTime, c.EndTime, cm)
			}
		}
	}
}

func TestValidateCandidatesDropsUnparseable(t *testing.T) {
	candidates := []models.Candidate{
		candidate("not-a-date", "10:00", "10:30", 1),
		candidate("2024-06-03", "25:00", "26:00", 1),
		candidate("2024-06-03", "10:00", "10:30", 1),
	}

	got := ValidateCandidates(candidates, nil, "c1", "s1", testNow)
	if len(got) != 1 || got[0].Date != "2024-06-03" {
		t.Errorf("unparseable candidates must be dropped, got %+v", got)
	}
}
