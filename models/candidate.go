package models

// Candidate sources.
const (
	CandidateSourceGenerated  = "generated"
	CandidateSourceAIEnhanced = "ai-enhanced"
)

// Candidate is a proposed, not-yet-confirmed appointment time. Candidates
// exist only within one suggestion request and are never persisted unless
// confirmed into a Commitment.
type Candidate struct {
	Date       string `json:"date"`      // "2006-01-02"
	StartTime  string `json:"startTime"` // "HH:MM"
	EndTime    string `json:"endTime"`
	DayOfWeek  int    `json:"dayOfWeek"`
	Reasoning  string `json:"reasoning,omitempty"`
	Confidence string `json:"confidence,omitempty"`
	Source     string `json:"source"`
}
