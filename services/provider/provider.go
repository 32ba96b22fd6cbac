package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookwell/models"
	"bookwell/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a provider account and signs them in.
func (s *DefaultProviderService) Register(ctx context.Context, reg models.ProviderRegistration) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", reg.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	p := &models.Provider{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hashed),
		Phone:        reg.Phone,
		Bio:          reg.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(p.ID, utils.RoleProvider, TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	p.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, p); err != nil {
		utils.GetLogger().Error("failed to create provider", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{ID: p.ID, Name: p.Name, Email: p.Email, Token: token}, nil
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProviderService) Authenticate(ctx context.Context, creds models.AuthCredentials) (*AuthResponse, error) {
	p, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil || p == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, utils.RoleProvider, TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.SetTokenHash(ctx, p.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{ID: p.ID, Name: p.Name, Email: p.Email, Token: token}, nil
}

var updatableFields = map[string]bool{
	"name":         true,
	"phone":        true,
	"bio":          true,
	"profileImage": true,
}

func (s *DefaultProviderService) GetProfile(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProviderService) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) (*models.Provider, error) {
	filtered := map[string]interface{}{}
	for k, v := range fields {
		if updatableFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	filtered["updatedAt"] = time.Now()

	if err := s.Repo.Update(ctx, id, filtered); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProviderService) DeleteAccount(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
