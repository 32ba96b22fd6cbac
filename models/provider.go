package models

import "time"

// Provider is a service provider's account and profile. WeeklySchedule has
// one row per day of week; rows with IsAvailable=false contribute no
// bookable time.
type Provider struct {
	ID             string        `bson:"id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	Email          string        `bson:"email" json:"email"`
	PasswordHash   string        `bson:"passwordHash" json:"-"`
	Phone          string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio            string        `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage   string        `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	WeeklySchedule []ScheduleDay `bson:"weeklySchedule,omitempty" json:"weeklySchedule,omitempty"`
	TokenHash      string        `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ProviderRegistration is the provider signup payload.
type ProviderRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}
