package provider

import (
	"context"
	"time"

	providerRepo "bookwell/database/repository/provider"
	"bookwell/models"
)

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProviderService manages provider accounts, profiles and the weekly
// working schedule.
type ProviderService interface {
	Register(ctx context.Context, reg models.ProviderRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, creds models.AuthCredentials) (*AuthResponse, error)

	GetProfile(ctx context.Context, id string) (*models.Provider, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Provider, error)
	DeleteAccount(ctx context.Context, id string) error

	GetSchedule(ctx context.Context, id string) ([]models.ScheduleDay, error)
	SetSchedule(ctx context.Context, id string, rows []models.ScheduleDay) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

// TokenTTL is how long issued provider tokens stay valid.
const TokenTTL = 72 * time.Hour
