package models

// AISuggestion is one slot proposal as returned by the text-generation
// service. All fields are untrusted until re-validated.
type AISuggestion struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	DayOfWeek int    `json:"dayOfWeek"`
	Reasoning string `json:"reasoning"`
}

// AISuggestionReply is the JSON object the prompt asks the model to emit.
type AISuggestionReply struct {
	Suggestions []AISuggestion `json:"suggestions"`
	Reasoning   string         `json:"reasoning"`
	Confidence  string         `json:"confidence"`
}

// ReminderPayload is the queued task payload for appointment reminders.
type ReminderPayload struct {
	CommitmentID string `json:"commitmentId"`
	Target       string `json:"target"` // "consumer" or "provider"
	TargetID     string `json:"targetId"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	FireDate     string `json:"fireDate"`
}
