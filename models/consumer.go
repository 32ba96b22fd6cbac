package models

import "time"

// Consumer is a service consumer's account and profile. AvailabilitySlots
// holds the recurring weekly availability used by the suggestion engine.
type Consumer struct {
	ID                string         `bson:"id" json:"id"`
	Name              string         `bson:"name" json:"name"`
	Email             string         `bson:"email" json:"email"`
	PasswordHash      string         `bson:"passwordHash" json:"-"`
	Phone             string         `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage      string         `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	AvailabilitySlots []ConsumerSlot `bson:"availabilitySlots,omitempty" json:"availabilitySlots,omitempty"`
	TokenHash         string         `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt         time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ConsumerRegistration is the signup payload.
type ConsumerRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// AuthCredentials is the signin payload shared by consumers and providers.
type AuthCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
