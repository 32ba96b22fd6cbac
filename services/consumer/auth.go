package consumer

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

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a consumer account and signs them in.
func (s *DefaultConsumerService) Register(ctx context.Context, reg models.ConsumerRegistration) (*AuthResponse, error) {
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
	c := &models.Consumer{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hashed),
		Phone:        reg.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := utils.GenerateToken(c.ID, utils.RoleConsumer, TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	c.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, c); err != nil {
		utils.GetLogger().Error("failed to create consumer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{ID: c.ID, Name: c.Name, Email: c.Email, Token: token}, nil
}

// Authenticate verifies credentials and issues a fresh token, replacing
// the stored token hash.
func (s *DefaultConsumerService) Authenticate(ctx context.Context, creds models.AuthCredentials) (*AuthResponse, error) {
	c, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil || c == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(c.ID, utils.RoleConsumer, TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := s.Repo.SetTokenHash(ctx, c.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{ID: c.ID, Name: c.Name, Email: c.Email, Token: token}, nil
}
