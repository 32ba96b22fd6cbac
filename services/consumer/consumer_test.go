package consumer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"bookwell/config"
	"bookwell/models"
)

type memConsumerRepo struct {
	byID    map[string]*models.Consumer
	byEmail map[string]*models.Consumer
}

func newMemConsumerRepo() *memConsumerRepo {
	return &memConsumerRepo{
		byID:    map[string]*models.Consumer{},
		byEmail: map[string]*models.Consumer{},
	}
}

func (r *memConsumerRepo) Create(_ context.Context, c *models.Consumer) error {
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *memConsumerRepo) GetByID(_ context.Context, id string) (*models.Consumer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("consumer %s not found", id)
	}
	return c, nil
}

func (r *memConsumerRepo) GetByEmail(_ context.Context, email string) (*models.Consumer, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("consumer with email %s not found", email)
	}
	return c, nil
}

func (r *memConsumerRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("consumer %s not found", id)
	}
	if name, ok := fields["name"].(string); ok {
		c.Name = name
	}
	if phone, ok := fields["phone"].(string); ok {
		c.Phone = phone
	}
	return nil
}

func (r *memConsumerRepo) Delete(_ context.Context, id string) error {
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("consumer %s not found", id)
	}
	delete(r.byEmail, c.Email)
	delete(r.byID, id)
	return nil
}

func (r *memConsumerRepo) GetAvailability(_ context.Context, id string) ([]models.ConsumerSlot, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("consumer %s not found", id)
	}
	return c.AvailabilitySlots, nil
}

func (r *memConsumerRepo) SetAvailability(_ context.Context, id string, slots []models.ConsumerSlot) error {
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("consumer %s not found", id)
	}
	c.AvailabilitySlots = slots
	return nil
}

func (r *memConsumerRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	c, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("consumer %s not found", id)
	}
	c.TokenHash = tokenHash
	return nil
}

func newTestService() (*DefaultConsumerService, *memConsumerRepo) {
	config.AppConfig.JWTSecret = "test-secret"
	repo := newMemConsumerRepo()
	return &DefaultConsumerService{Repo: repo}, repo
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	resp, err := s.Register(ctx, models.ConsumerRegistration{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.ID == "" {
		t.Fatal("register response missing token or id")
	}

	stored := repo.byEmail["ada@example.com"]
	if stored == nil {
		t.Fatal("consumer not persisted")
	}
	if stored.PasswordHash == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	auth, err := s.Authenticate(ctx, models.AuthCredentials{Email: "ada@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if auth.ID != resp.ID {
		t.Errorf("authenticated id = %q, want %q", auth.ID, resp.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, models.ConsumerRegistration{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := s.Authenticate(ctx, models.AuthCredentials{Email: "ada@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	_, err = s.Authenticate(ctx, models.AuthCredentials{Email: "nobody@example.com", Password: "hunter2hunter2"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	reg := models.ConsumerRegistration{Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2"}
	if _, err := s.Register(ctx, reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := s.Register(ctx, reg); err == nil {
		t.Error("duplicate email should be rejected")
	}
}

func TestSetAvailabilityValidatesSlots(t *testing.T) {
	s, repo := newTestService()
	ctx := context.Background()

	resp, err := s.Register(ctx, models.ConsumerRegistration{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	good := []models.ConsumerSlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "18:00", EndTime: "00:00"}, // runs to midnight
	}
	if err := s.SetAvailability(ctx, resp.ID, good); err != nil {
		t.Fatalf("valid slots rejected: %v", err)
	}
	if got := len(repo.byID[resp.ID].AvailabilitySlots); got != 2 {
		t.Errorf("stored %d slots, want 2", got)
	}

	bad := [][]models.ConsumerSlot{
		{{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}},
		{{DayOfWeek: 1, StartTime: "9:00", EndTime: "10:00"}},
		{{DayOfWeek: 1, StartTime: "10:00", EndTime: "10:00"}},
		{{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"}},
	}
	for i, slots := range bad {
		if err := s.SetAvailability(ctx, resp.ID, slots); err == nil {
			t.Errorf("case %d: malformed slot accepted", i)
		}
	}
}
