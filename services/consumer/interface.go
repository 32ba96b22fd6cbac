package consumer

import (
	"context"
	"time"

	consumerRepo "bookwell/database/repository/consumer"
	"bookwell/models"
)

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ConsumerService manages consumer accounts, profiles and recurring
// availability.
type ConsumerService interface {
	Register(ctx context.Context, reg models.ConsumerRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, creds models.AuthCredentials) (*AuthResponse, error)

	GetProfile(ctx context.Context, id string) (*models.Consumer, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Consumer, error)
	DeleteAccount(ctx context.Context, id string) error

	GetAvailability(ctx context.Context, id string) ([]models.ConsumerSlot, error)
	SetAvailability(ctx context.Context, id string, slots []models.ConsumerSlot) error
}

// DefaultConsumerService implements ConsumerService.
type DefaultConsumerService struct {
	Repo consumerRepo.ConsumerRepository
}

// TokenTTL is how long issued consumer tokens stay valid.
const TokenTTL = 72 * time.Hour
