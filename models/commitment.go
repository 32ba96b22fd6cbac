package models

import "time"

// Commitment statuses. Pending and confirmed count as active for conflict
// checks; the remaining three are terminal.
const (
	CommitmentPending   = "pending"
	CommitmentConfirmed = "confirmed"
	CommitmentCompleted = "completed"
	CommitmentCancelled = "cancelled"
	CommitmentNoShow    = "no_show"
)

// ActiveCommitmentStatuses lists the statuses that block a time slot.
var ActiveCommitmentStatuses = []string{CommitmentPending, CommitmentConfirmed}

// Commitment represents a durable scheduled appointment between a consumer
// and a provider for a specific service. Start/End are minutes from midnight
// on Date; the interval is half-open [Start, End).
type Commitment struct {
	ID         string    `bson:"id" json:"id"`
	ConsumerID string    `bson:"consumerId" json:"consumerId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	Date       string    `bson:"date" json:"date"` // "2006-01-02"
	Start      int       `bson:"start" json:"start"`
	End        int       `bson:"end" json:"end"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the commitment still blocks its slot.
func (c Commitment) IsActive() bool {
	return c.Status == CommitmentPending || c.Status == CommitmentConfirmed
}

// IsTerminal reports whether the commitment has reached a final state.
// No further status transition is permitted once terminal.
func (c Commitment) IsTerminal() bool {
	switch c.Status {
	case CommitmentCompleted, CommitmentCancelled, CommitmentNoShow:
		return true
	}
	return false
}
