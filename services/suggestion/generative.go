package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bookwell/models"
	"bookwell/services/availability"
	"bookwell/utils"
)

// TextGenerator abstracts the external text-generation call so the
// suggester can be exercised without network access.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultGenerativeTimeout bounds the external call; its expiry is treated
// like any other transport failure.
const DefaultGenerativeTimeout = 15 * time.Second

// GenerativeSuggester decorates a fallback Suggester with an external
// text-generation pass. Any transport error, timeout, or parse failure
// falls back completely to the wrapped Suggester, never a partial result,
// and never surfaces to the caller. Successful replies are mapped into
// candidates and run through the same conflict filter the deterministic
// path uses.
type GenerativeSuggester struct {
	Client   TextGenerator
	Fallback Suggester
	Timeout  time.Duration
}

func (g *GenerativeSuggester) Suggest(ctx context.Context, in SuggestionInput) ([]models.Candidate, error) {
	logger := utils.GetLogger()

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultGenerativeTimeout
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := g.Client.GenerateContent(genCtx, buildPrompt(in))
	if err != nil {
		logger.Warn("generative suggestion call failed, using deterministic fallback",
			zap.Error(fmt.Errorf("%w: %v", ErrExternalServiceUnavailable, err)))
		return g.Fallback.Suggest(ctx, in)
	}

	candidates, err := g.parseReply(raw, in)
	if err != nil {
		logger.Warn("generative suggestion reply unusable, using deterministic fallback",
			zap.Error(err))
		return g.Fallback.Suggest(ctx, in)
	}

	// Re-validate through the exact filter the deterministic path uses.
	// Candidates that fail are dropped, never substituted.
	valid := availability.ValidateCandidates(candidates, in.Active, in.ConsumerID, in.Service.ID, in.Now)
	if len(valid) > in.TargetCount {
		valid = valid[:in.TargetCount]
	}
	return valid, nil
}

// parseReply maps the model's JSON into candidates. A reply that cannot be
// decoded, or in which no suggestion survives shape validation, is a parse
// failure and triggers the full fallback.
func (g *GenerativeSuggester) parseReply(raw string, in SuggestionInput) ([]models.Candidate, error) {
	logger := utils.GetLogger()

	var reply models.AISuggestionReply
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON reply: %v", ErrExternalServiceUnavailable, err)
	}
	if len(reply.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: reply contained no suggestions", ErrExternalServiceUnavailable)
	}

	confidence := reply.Confidence
	if confidence == "" {
		confidence = "medium"
	}

	var candidates []models.Candidate
	for _, s := range reply.Suggestions {
		date, err := time.ParseInLocation(availability.DateLayout, s.Date, in.Now.Location())
		if err != nil {
			logger.Warn("dropping AI suggestion with bad date", zap.String("date", s.Date))
			continue
		}
		startMin, err := availability.ToMinutes(s.Time)
		if err != nil {
			logger.Warn("dropping AI suggestion with bad time", zap.String("time", s.Time))
			continue
		}
		reasoning := s.Reasoning
		if reasoning == "" {
			reasoning = reply.Reasoning
		}
		candidates = append(candidates, models.Candidate{
			Date:       s.Date,
			StartTime:  availability.ToHHMM(startMin),
			EndTime:    availability.ToHHMM(startMin + in.Service.DurationMinutes),
			DayOfWeek:  int(date.Weekday()),
			Reasoning:  reasoning,
			Confidence: confidence,
			Source:     models.CandidateSourceAIEnhanced,
		})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no suggestion survived shape validation", ErrExternalServiceUnavailable)
	}
	return candidates, nil
}

// stripCodeFences removes a markdown ```json fence the model sometimes
// wraps its reply in despite the JSON response format request.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
