package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	commitmentRepo "bookwell/database/repository/commitment"
	"bookwell/models"
)

// memRepo is an in-memory CommitmentRepository that mirrors the unique
// active-slot index by rejecting a second active insert for the same
// provider, date and start with a duplicate-key error.
type memRepo struct {
	commitments map[string]*models.Commitment
}

func newMemRepo() *memRepo {
	return &memRepo{commitments: map[string]*models.Commitment{}}
}

func (r *memRepo) Insert(_ context.Context, c *models.Commitment) error {
	for _, other := range r.commitments {
		if other.IsActive() && other.ProviderID == c.ProviderID &&
			other.Date == c.Date && other.Start == c.Start {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	cp := *c
	r.commitments[c.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.Commitment, error) {
	cm, ok := r.commitments[id]
	if !ok {
		return nil, fmt.Errorf("commitment %s not found", id)
	}
	cp := *cm
	return &cp, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id, status string) error {
	cm, ok := r.commitments[id]
	if !ok {
		return fmt.Errorf("commitment %s not found", id)
	}
	cm.Status = status
	return nil
}

func (r *memRepo) FindActiveByProviderAndDate(_ context.Context, providerID, date string) ([]models.Commitment, error) {
	var out []models.Commitment
	for _, cm := range r.commitments {
		if cm.IsActive() && cm.ProviderID == providerID && cm.Date == date {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memRepo) FindActiveForConsumerOrService(_ context.Context, consumerID, serviceID string) ([]models.Commitment, error) {
	var out []models.Commitment
	for _, cm := range r.commitments {
		if cm.IsActive() && (cm.ConsumerID == consumerID || cm.ServiceID == serviceID) {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memRepo) ListByConsumer(_ context.Context, consumerID string) ([]models.Commitment, error) {
	var out []models.Commitment
	for _, cm := range r.commitments {
		if cm.ConsumerID == consumerID {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memRepo) ListByProvider(_ context.Context, providerID string) ([]models.Commitment, error) {
	var out []models.Commitment
	for _, cm := range r.commitments {
		if cm.ProviderID == providerID {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memRepo) FindActiveEndedBefore(_ context.Context, dateCutoff string, minuteCutoff int) ([]models.Commitment, error) {
	var out []models.Commitment
	for _, cm := range r.commitments {
		if !cm.IsActive() {
			continue
		}
		if cm.Date < dateCutoff || (cm.Date == dateCutoff && cm.End <= minuteCutoff) {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *memRepo) CountByStatus(context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, cm := range r.commitments {
		out[cm.Status]++
	}
	return out, nil
}

func (r *memRepo) TopServices(context.Context, int) ([]commitmentRepo.ServiceCount, error) {
	return nil, nil
}

type fakeCatalog struct{ services map[string]*models.Service }

func (f fakeCatalog) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return svc, nil
}

func newTestService(repo *memRepo) *DefaultBookingService {
	catalog := fakeCatalog{services: map[string]*models.Service{
		"svc-cut": {
			ID:              "svc-cut",
			ProviderID:      "prov-1",
			Name:            "Haircut",
			DurationMinutes: 60,
			Active:          true,
		},
	}}
	return &DefaultBookingService{
		Repo:        repo,
		CatalogRepo: catalog,
		Guard:       &ConflictGuard{Repo: repo},
		Clock:       func() time.Time { return testNow },
	}
}

func TestCreateCommitmentStartsPending(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	cm, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00")
	if err != nil {
		t.Fatalf("ValidateAndCreateCommitment: %v", err)
	}
	if cm.Status != models.CommitmentPending {
		t.Errorf("status = %q, want %q", cm.Status, models.CommitmentPending)
	}
	if cm.Start != 600 || cm.End != 660 {
		t.Errorf("interval = [%d, %d), want [600, 660)", cm.Start, cm.End)
	}
	if cm.ProviderID != "prov-1" {
		t.Errorf("providerId = %q, want prov-1", cm.ProviderID)
	}
	if cm.ID == "" {
		t.Error("commitment id should be assigned")
	}
}

func TestCreateCommitmentRejectsOverlap(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	if _, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.ValidateAndCreateCommitment(context.Background(), "con-2", "svc-cut", "2024-06-03", "10:30")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("overlapping create: err = %v, want ErrSlotConflict", err)
	}
}

func TestCreateCommitmentAllowsTouchingSlot(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	if _, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// 11:00-12:00 touches 10:00-11:00 and must succeed.
	if _, err := s.ValidateAndCreateCommitment(context.Background(), "con-2", "svc-cut", "2024-06-03", "11:00"); err != nil {
		t.Errorf("touching create: %v", err)
	}
}

func TestCreateCommitmentRejectsPastStart(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	// testNow is Saturday 2024-06-01 noon.
	_, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-01", "09:00")
	if !errors.Is(err, ErrPastAppointment) {
		t.Errorf("err = %v, want ErrPastAppointment", err)
	}
}

func TestCreateCommitmentMapsDuplicateKeyToConflict(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	if _, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Write the racing commitment straight through the repository so the
	// guard's read misses it and the insert hits the index instead.
	dup := &DefaultBookingService{
		Repo:        repo,
		CatalogRepo: s.CatalogRepo,
		Guard:       &ConflictGuard{Repo: staticFinder{}},
		Clock:       s.Clock,
	}
	_, err := dup.ValidateAndCreateCommitment(context.Background(), "con-2", "svc-cut", "2024-06-03", "10:00")
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("duplicate insert: err = %v, want ErrSlotConflict", err)
	}
}

func TestConfirmCommitment(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	cm, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.ConfirmCommitment(context.Background(), "con-other", cm.ID); err == nil {
		t.Error("confirm by non-owner should fail")
	}

	got, err := s.ConfirmCommitment(context.Background(), "con-1", cm.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Status != models.CommitmentConfirmed {
		t.Errorf("status = %q, want %q", got.Status, models.CommitmentConfirmed)
	}

	// Confirming twice is a no-op, not an error.
	if _, err := s.ConfirmCommitment(context.Background(), "con-1", cm.ID); err != nil {
		t.Errorf("second confirm: %v", err)
	}
}

func TestTerminalCommitmentsNeverChange(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	cm, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CancelCommitment(context.Background(), "con-1", cm.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := s.ConfirmCommitment(context.Background(), "con-1", cm.ID); !errors.Is(err, ErrTerminalStatus) {
		t.Errorf("confirm cancelled: err = %v, want ErrTerminalStatus", err)
	}
	if err := s.CancelCommitment(context.Background(), "con-1", cm.ID); !errors.Is(err, ErrTerminalStatus) {
		t.Errorf("cancel cancelled: err = %v, want ErrTerminalStatus", err)
	}
}

func TestCancelByProvider(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	cm, err := s.ValidateAndCreateCommitment(context.Background(), "con-1", "svc-cut", "2024-06-03", "10:00")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.CancelCommitment(context.Background(), "someone-else", cm.ID); err == nil {
		t.Error("cancel by unrelated party should fail")
	}
	if err := s.CancelCommitment(context.Background(), "prov-1", cm.ID); err != nil {
		t.Errorf("cancel by provider: %v", err)
	}
}

func TestSweepExpired(t *testing.T) {
	repo := newMemRepo()
	s := newTestService(repo)

	seed := []*models.Commitment{
		{ID: "c1", ProviderID: "prov-1", Date: "2024-05-30", Start: 600, End: 660, Status: models.CommitmentConfirmed},
		{ID: "c2", ProviderID: "prov-1", Date: "2024-05-30", Start: 720, End: 780, Status: models.CommitmentPending},
		// Ends after the sweep cutoff on the cutoff day.
		{ID: "c3", ProviderID: "prov-1", Date: "2024-06-01", Start: 780, End: 840, Status: models.CommitmentConfirmed},
		{ID: "c4", ProviderID: "prov-1", Date: "2024-05-29", Start: 600, End: 660, Status: models.CommitmentCancelled},
	}
	for _, cm := range seed {
		cp := *cm
		repo.commitments[cm.ID] = &cp
	}

	swept, err := s.SweepExpired(context.Background(), testNow)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if swept != 2 {
		t.Errorf("swept = %d, want 2", swept)
	}

	wantStatus := map[string]string{
		"c1": models.CommitmentCompleted,
		"c2": models.CommitmentNoShow,
		"c3": models.CommitmentConfirmed,
		"c4": models.CommitmentCancelled,
	}
	for id, want := range wantStatus {
		if got := repo.commitments[id].Status; got != want {
			t.Errorf("%s status = %q, want %q", id, got, want)
		}
	}
}
