package availability

import (
	"time"

	"bookwell/models"
)

// CandidateStart parses a candidate's concrete start instant in loc.
func CandidateStart(c models.Candidate, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, c.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	startMin, err := ToMinutes(c.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(startMin) * time.Minute), nil
}

// candidateBounds returns the candidate's [start, end) minutes of day.
// An end at or before the start means the slot runs to midnight.
func candidateBounds(c models.Candidate) (start, end int, err error) {
	start, err = ToMinutes(c.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = ToMinutes(c.EndTime)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		end = MinutesPerDay
	}
	return start, end, nil
}

// ValidateCandidates filters a candidate list against active commitments
// and the current time. Candidates in the past are dropped, as is any
// candidate whose interval overlaps an active commitment sharing the same
// consumer or the same service. Order is preserved. The same filter is
// applied to deterministic and AI-enhanced candidates, so generative
// output is never trusted for correctness, only for slot choice and
// reasoning text.
func ValidateCandidates(candidates []models.Candidate, commitments []models.Commitment, consumerID, serviceID string, now time.Time) []models.Candidate {
	valid := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		start, err := CandidateStart(c, now.Location())
		if err != nil {
			continue
		}
		if !start.After(now) {
			continue
		}
		startMin, endMin, err := candidateBounds(c)
		if err != nil {
			continue
		}
		if hasConflict(c.Date, startMin, endMin, commitments, consumerID, serviceID) {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

func hasConflict(date string, start, end int, commitments []models.Commitment, consumerID, serviceID string) bool {
	for _, cm := range commitments {
		if !cm.IsActive() {
			continue
		}
		if cm.ConsumerID != consumerID && cm.ServiceID != serviceID {
			continue
		}
		if cm.Date != date {
			continue
		}
		if Overlaps(start, end, cm.Start, cm.End) {
			return true
		}
	}
	return false
}
