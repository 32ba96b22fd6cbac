package models

import "time"

// Category groups services for browsing.
type Category struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Service is a bookable offering published by a provider. SlotMask, when
// non-empty, restricts the provider's schedule for this service only; an
// empty mask means the provider's availability applies as-is.
type Service struct {
	ID              string         `bson:"id" json:"id"`
	ProviderID      string         `bson:"providerId" json:"providerId"`
	CategoryID      string         `bson:"categoryId" json:"categoryId"`
	Name            string         `bson:"name" json:"name"`
	Description     string         `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int            `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64        `bson:"price" json:"price"`
	SlotMask        []ConsumerSlot `bson:"slotMask,omitempty" json:"slotMask,omitempty"`
	ImageURL        string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active          bool           `bson:"active" json:"active"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}
