package models

import "time"

// SuggestionSession is the cached result of a suggestion request. A
// subsequent confirm call references the session so only a previously
// proposed candidate can be booked through it.
type SuggestionSession struct {
	SessionID  string      `json:"sessionId"`
	ConsumerID string      `json:"consumerId"`
	ServiceID  string      `json:"serviceId"`
	Candidates []Candidate `json:"candidates"`
	CreatedAt  time.Time   `json:"createdAt"`
}
