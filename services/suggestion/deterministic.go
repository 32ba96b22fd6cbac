package suggestion

import (
	"context"

	"bookwell/models"
	"bookwell/services/availability"
)

// DeterministicSuggester is the algorithmic fallback: it generates
// candidates from the common windows and filters them against active
// commitments. It never errors and never calls out of process.
type DeterministicSuggester struct{}

func (DeterministicSuggester) Suggest(_ context.Context, in SuggestionInput) ([]models.Candidate, error) {
	candidates := availability.GenerateCandidates(in.Windows, in.TargetCount, in.Service.DurationMinutes, in.Now)
	return availability.ValidateCandidates(candidates, in.Active, in.ConsumerID, in.Service.ID, in.Now), nil
}
